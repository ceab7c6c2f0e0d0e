// Package api contains the HTTP handlers, request models and router of the
// portfolio API.
//
// Every resource route follows the same pipeline: the router rejects
// unsupported methods, the auth middleware rejects missing or invalid tokens
// on protected routes, and the handler then checks the body for required
// fields, validates the id, delegates to the matching service and maps the
// outcome to a status code and a {"message": ...} body.
package api
