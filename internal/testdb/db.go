package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ccrayp/portfolio-api/internal/config"
	"github.com/ccrayp/portfolio-api/internal/platform/database"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// IsIntegrationTestEnvironment returns true if the DATABASE_URL environment
// variable is set, indicating that PostgreSQL integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// Open returns a migrated database closed at test cleanup. SQLite is used
// unless DATABASE_URL points at a PostgreSQL server.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	if IsIntegrationTestEnvironment() {
		return OpenPostgres(t)
	}
	return OpenSQLite(t)
}

// OpenSQLite returns a fresh in-memory SQLite database with the schema
// applied. Every call gets its own database.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()
	return open(t, config.DatabaseConfig{
		Driver: database.DriverSQLite,
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
}

// OpenPostgres connects to DATABASE_URL and applies migrations, skipping
// the test when the variable is not set. Tests sharing this database should
// isolate their writes with WithTx.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}
	return open(t, config.DatabaseConfig{Driver: database.DriverPostgres, URL: url})
}

func open(t *testing.T, cfg config.DatabaseConfig) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.Open(ctx, cfg, quiet)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	require.NoError(t, database.Migrate(ctx, db, cfg.Driver, quiet), "Failed to run migrations")
	return db
}
