// Package database provides the SQL implementations of the internal/store
// interfaces. The same queries run on PostgreSQL (through the pgx stdlib
// driver) and on SQLite (through go-sqlite3): both accept $N placeholders
// and INSERT ... RETURNING. Schema changes live in embedded per-dialect goose
// migrations.
package database
