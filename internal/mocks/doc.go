// Package mocks provides hand-written test doubles for the service and auth
// interfaces. Each mock takes optional Fn fields; when a field is nil the
// method returns the zero value. Calls counts every invocation so tests can
// assert that a request was rejected before reaching the service.
package mocks
