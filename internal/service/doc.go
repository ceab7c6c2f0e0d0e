// Package service contains the resource services that sit between the HTTP
// handlers and the stores in internal/store.
//
// Each service (posts, projects, technologies) exposes the same operations:
// Create, GetByID, GetAll, UpdateByID and DeleteByID. Every mutation runs in
// a single transaction through store.RunInTransaction and is rolled back if
// any step fails. Absent rows are reported with the not-found sentinels in
// this package so callers can tell them apart from storage failures.
//
// The service layer depends on domain entities and store interfaces, never on
// a specific database implementation.
package service
