package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ccrayp/portfolio-api/internal/domain"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/store"
)

// group is reserved in both dialects and must stay quoted.
const technologyColumns = `id, label, img, "group", mode`

// SQLTechnologyStore implements store.TechnologyStore on database/sql.
type SQLTechnologyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTechnologyStore creates a TechnologyStore over db.
func NewTechnologyStore(db store.DBTX, logger *slog.Logger) *SQLTechnologyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLTechnologyStore{
		db:     db,
		logger: logger.With(slog.String("component", "technology_store")),
	}
}

var _ store.TechnologyStore = (*SQLTechnologyStore)(nil)

// Create implements store.TechnologyStore.Create.
func (s *SQLTechnologyStore) Create(ctx context.Context, tech *domain.Technology) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO technologies (label, img, "group", mode)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, tech.Label, tech.Img, tech.Group, tech.Mode).Scan(&tech.ID)
	if err != nil {
		log.Error("failed to create technology", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("technology created successfully",
		slog.Int64("technology_id", tech.ID),
		slog.String("group", tech.Group))
	return nil
}

// GetByID implements store.TechnologyStore.GetByID.
func (s *SQLTechnologyStore) GetByID(ctx context.Context, id int64) (*domain.Technology, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + technologyColumns + ` FROM technologies WHERE id = $1`

	tech, err := scanTechnology(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("technology not found", slog.Int64("technology_id", id))
			return nil, store.ErrTechnologyNotFound
		}
		log.Error("failed to get technology", slog.Int64("technology_id", id), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return tech, nil
}

// List implements store.TechnologyStore.List.
func (s *SQLTechnologyStore) List(ctx context.Context) ([]*domain.Technology, error) {
	return s.query(ctx, `SELECT `+technologyColumns+` FROM technologies ORDER BY id`)
}

// ListByGroup implements store.TechnologyStore.ListByGroup.
// The comparison is exact and case-sensitive.
func (s *SQLTechnologyStore) ListByGroup(ctx context.Context, group string) ([]*domain.Technology, error) {
	return s.query(ctx,
		`SELECT `+technologyColumns+` FROM technologies WHERE "group" = $1 ORDER BY id`,
		group)
}

func (s *SQLTechnologyStore) query(ctx context.Context, query string, args ...any) ([]*domain.Technology, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to query technologies", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	techs := []*domain.Technology{}
	for rows.Next() {
		tech, err := scanTechnology(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan technology: %w", err)
		}
		techs = append(techs, tech)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate technologies: %w", err)
	}
	return techs, nil
}

// Update implements store.TechnologyStore.Update.
func (s *SQLTechnologyStore) Update(ctx context.Context, tech *domain.Technology) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE technologies
		SET label = $1, img = $2, "group" = $3, mode = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query, tech.Label, tech.Img, tech.Group, tech.Mode, tech.ID)
	if err != nil {
		log.Error("failed to update technology", slog.Int64("technology_id", tech.ID), slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrTechnologyNotFound); err != nil {
		return err
	}

	log.Info("technology updated successfully", slog.Int64("technology_id", tech.ID))
	return nil
}

// Delete implements store.TechnologyStore.Delete.
func (s *SQLTechnologyStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete technology", slog.Int64("technology_id", id), slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrTechnologyNotFound); err != nil {
		return err
	}

	log.Info("technology deleted successfully", slog.Int64("technology_id", id))
	return nil
}

// WithTx implements store.TechnologyStore.WithTx.
func (s *SQLTechnologyStore) WithTx(tx *sql.Tx) store.TechnologyStore {
	return &SQLTechnologyStore{db: tx, logger: s.logger}
}

func scanTechnology(row rowScanner) (*domain.Technology, error) {
	var t domain.Technology
	if err := row.Scan(&t.ID, &t.Label, &t.Img, &t.Group, &t.Mode); err != nil {
		return nil, err
	}
	return &t, nil
}
