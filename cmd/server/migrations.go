package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/ccrayp/portfolio-api/internal/platform/database"
)

// migrate runs a goose command against the configured database.
func migrate(ctx context.Context, configDir, command string) error {
	cfg, l, err := loadApp(configDir)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.Database, l)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Error("Error closing database connection", "error", err)
		}
	}()

	provider, err := database.NewMigrator(db, cfg.Database.Driver)
	if err != nil {
		return err
	}
	return runMigrationCommand(ctx, provider, command, l.With("component", "migrations"))
}

// runMigrationCommand executes up, down or status on provider.
func runMigrationCommand(ctx context.Context, provider *goose.Provider, command string, l *slog.Logger) error {
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up failed: %w", err)
		}
		logResults(l, results)
		if len(results) == 0 {
			l.Info("No pending migrations")
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down failed: %w", err)
		}
		logResults(l, []*goose.MigrationResult{result})
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status failed: %w", err)
		}
		for _, s := range statuses {
			l.Info("Migration status",
				"version", s.Source.Version,
				"path", s.Source.Path,
				"state", string(s.State),
				"applied_at", s.AppliedAt)
		}
	default:
		return fmt.Errorf("%w\nunknown migrate command %q", errUsage, command)
	}
	return nil
}

func logResults(l *slog.Logger, results []*goose.MigrationResult) {
	for _, r := range results {
		l.Info("Migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"direction", r.Direction,
			"duration", r.Duration)
	}
}
