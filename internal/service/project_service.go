package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/ccrayp/portfolio-api/internal/domain"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/store"
)

// ProjectService provides project operations.
type ProjectService interface {
	// Create persists a new project and returns it with its assigned id.
	Create(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error)

	// GetByID returns the project with id, or ErrProjectNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Project, error)

	// GetAll returns every project. An empty table is not an error.
	GetAll(ctx context.Context) ([]*domain.Project, error)

	// UpdateByID overwrites every field of the project with id.
	// Returns ErrProjectNotFound if it does not exist.
	UpdateByID(ctx context.Context, id int64, fields domain.ProjectFields) error

	// DeleteByID removes the project with id and returns it as it was before
	// deletion. Returns ErrProjectNotFound if it does not exist.
	DeleteByID(ctx context.Context, id int64) (*domain.Project, error)
}

type projectServiceImpl struct {
	db       store.TxBeginner
	projects store.ProjectStore
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService. db starts the transactions that
// projects is rebound to with WithTx.
func NewProjectService(db store.TxBeginner, projects store.ProjectStore, logger *slog.Logger) (ProjectService, error) {
	if db == nil {
		return nil, &ServiceError{Entity: entityProject, Operation: "create_service", Message: "db cannot be nil"}
	}
	if projects == nil {
		return nil, &ServiceError{Entity: entityProject, Operation: "create_service", Message: "project store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &projectServiceImpl{
		db:       db,
		projects: projects,
		logger:   logger.With("component", "project_service"),
	}, nil
}

func (s *projectServiceImpl) Create(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	project := domain.NewProject(fields)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.projects.WithTx(tx).Create(ctx, project); err != nil {
			log.Error("failed to create project in transaction", "error", err)
			return NewServiceError(entityProject, "create", "failed to save project", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("project created", "project_id", project.ID)
	return project, nil
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).
				Error("failed to retrieve project", "error", err, "project_id", id)
		}
		return nil, NewServiceError(entityProject, "get", "failed to retrieve project", err)
	}
	return project, nil
}

func (s *projectServiceImpl) GetAll(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list projects", "error", err)
		return nil, NewServiceError(entityProject, "list", "failed to list projects", err)
	}
	return projects, nil
}

func (s *projectServiceImpl) UpdateByID(ctx context.Context, id int64, fields domain.ProjectFields) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProjects := s.projects.WithTx(tx)

		project, err := txProjects.GetByID(ctx, id)
		if err != nil {
			log.Debug("project lookup for update failed", "error", err, "project_id", id)
			return NewServiceError(entityProject, "update", "failed to retrieve project", err)
		}

		project.Apply(fields)
		if err := txProjects.Update(ctx, project); err != nil {
			log.Error("failed to update project", "error", err, "project_id", id)
			return NewServiceError(entityProject, "update", "failed to save project", err)
		}

		log.Info("project updated", "project_id", id)
		return nil
	})
}

func (s *projectServiceImpl) DeleteByID(ctx context.Context, id int64) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *domain.Project
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProjects := s.projects.WithTx(tx)

		project, err := txProjects.GetByID(ctx, id)
		if err != nil {
			return NewServiceError(entityProject, "delete", "failed to retrieve project", err)
		}
		if err := txProjects.Delete(ctx, id); err != nil {
			log.Error("failed to delete project", "error", err, "project_id", id)
			return NewServiceError(entityProject, "delete", "failed to delete project", err)
		}
		deleted = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("project deleted", "project_id", id)
	return deleted, nil
}
