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

const projectColumns = `id, label, text, img, stack, link`

// SQLProjectStore implements store.ProjectStore on database/sql.
type SQLProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProjectStore creates a ProjectStore over db.
func NewProjectStore(db store.DBTX, logger *slog.Logger) *SQLProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

var _ store.ProjectStore = (*SQLProjectStore)(nil)

// Create implements store.ProjectStore.Create.
func (s *SQLProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO projects (label, text, img, stack, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		project.Label, project.Text, project.Img, project.Stack, project.Link,
	).Scan(&project.ID)
	if err != nil {
		log.Error("failed to create project", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("project created successfully", slog.Int64("project_id", project.ID))
	return nil
}

// GetByID implements store.ProjectStore.GetByID.
func (s *SQLProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project not found", slog.Int64("project_id", id))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project", slog.Int64("project_id", id), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return project, nil
}

// List implements store.ProjectStore.List.
func (s *SQLProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list projects", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	projects := []*domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

// Update implements store.ProjectStore.Update.
func (s *SQLProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE projects
		SET label = $1, text = $2, img = $3, stack = $4, link = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		project.Label, project.Text, project.Img, project.Stack, project.Link, project.ID,
	)
	if err != nil {
		log.Error("failed to update project", slog.Int64("project_id", project.ID), slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	log.Info("project updated successfully", slog.Int64("project_id", project.ID))
	return nil
}

// Delete implements store.ProjectStore.Delete.
func (s *SQLProjectStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete project", slog.Int64("project_id", id), slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	log.Info("project deleted successfully", slog.Int64("project_id", id))
	return nil
}

// WithTx implements store.ProjectStore.WithTx.
func (s *SQLProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &SQLProjectStore{db: tx, logger: s.logger}
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Label, &p.Text, &p.Img, &p.Stack, &p.Link); err != nil {
		return nil, err
	}
	return &p, nil
}
