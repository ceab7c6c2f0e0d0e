// Package testdb provides utilities specifically for database testing.
//
// Open returns a migrated database for a test: an isolated in-memory SQLite
// database by default, or the PostgreSQL database named by DATABASE_URL when
// that variable is set. WithTx runs a test body inside a transaction that is
// always rolled back.
package testdb
