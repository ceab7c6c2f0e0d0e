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

// TechnologyService provides technology operations.
type TechnologyService interface {
	// Create persists a new technology and returns it with its assigned id.
	Create(ctx context.Context, fields domain.TechnologyFields) (*domain.Technology, error)

	// GetByID returns the technology with id, or ErrTechnologyNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Technology, error)

	// GetAll returns every technology. An empty table is not an error.
	GetAll(ctx context.Context) ([]*domain.Technology, error)

	// GetByGroup returns the technologies whose group matches exactly.
	// An empty result is not an error.
	GetByGroup(ctx context.Context, group string) ([]*domain.Technology, error)

	// UpdateByID overwrites every field of the technology with id.
	// Returns ErrTechnologyNotFound if it does not exist.
	UpdateByID(ctx context.Context, id int64, fields domain.TechnologyFields) error

	// DeleteByID removes the technology with id and returns it as it was before
	// deletion. Returns ErrTechnologyNotFound if it does not exist.
	DeleteByID(ctx context.Context, id int64) (*domain.Technology, error)
}

type technologyServiceImpl struct {
	db     store.TxBeginner
	techs  store.TechnologyStore
	logger *slog.Logger
}

// NewTechnologyService creates a TechnologyService.
func NewTechnologyService(db store.TxBeginner, techs store.TechnologyStore, logger *slog.Logger) (TechnologyService, error) {
	if db == nil {
		return nil, &ServiceError{Entity: entityTechnology, Operation: "create_service", Message: "db cannot be nil"}
	}
	if techs == nil {
		return nil, &ServiceError{Entity: entityTechnology, Operation: "create_service", Message: "technology store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &technologyServiceImpl{
		db:     db,
		techs:  techs,
		logger: logger.With("component", "technology_service"),
	}, nil
}

func (s *technologyServiceImpl) Create(ctx context.Context, fields domain.TechnologyFields) (*domain.Technology, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	technology := domain.NewTechnology(fields)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.techs.WithTx(tx).Create(ctx, technology); err != nil {
			log.Error("failed to create technology in transaction", "error", err)
			return NewServiceError(entityTechnology, "create", "failed to save technology", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("technology created", "technology_id", technology.ID)
	return technology, nil
}

func (s *technologyServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Technology, error) {
	technology, err := s.techs.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).
				Error("failed to retrieve technology", "error", err, "technology_id", id)
		}
		return nil, NewServiceError(entityTechnology, "get", "failed to retrieve technology", err)
	}
	return technology, nil
}

func (s *technologyServiceImpl) GetAll(ctx context.Context) ([]*domain.Technology, error) {
	technologies, err := s.techs.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list technologies", "error", err)
		return nil, NewServiceError(entityTechnology, "list", "failed to list technologies", err)
	}
	return technologies, nil
}

func (s *technologyServiceImpl) GetByGroup(ctx context.Context, group string) ([]*domain.Technology, error) {
	technologies, err := s.techs.ListByGroup(ctx, group)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list technologies by group", "error", err, "group", group)
		return nil, NewServiceError(entityTechnology, "list_by_group", "failed to list technologies", err)
	}
	return technologies, nil
}

func (s *technologyServiceImpl) UpdateByID(ctx context.Context, id int64, fields domain.TechnologyFields) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txTechs := s.techs.WithTx(tx)

		technology, err := txTechs.GetByID(ctx, id)
		if err != nil {
			log.Debug("technology lookup for update failed", "error", err, "technology_id", id)
			return NewServiceError(entityTechnology, "update", "failed to retrieve technology", err)
		}

		technology.Apply(fields)
		if err := txTechs.Update(ctx, technology); err != nil {
			log.Error("failed to update technology", "error", err, "technology_id", id)
			return NewServiceError(entityTechnology, "update", "failed to save technology", err)
		}

		log.Info("technology updated", "technology_id", id)
		return nil
	})
}

func (s *technologyServiceImpl) DeleteByID(ctx context.Context, id int64) (*domain.Technology, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *domain.Technology
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txTechs := s.techs.WithTx(tx)

		technology, err := txTechs.GetByID(ctx, id)
		if err != nil {
			return NewServiceError(entityTechnology, "delete", "failed to retrieve technology", err)
		}
		if err := txTechs.Delete(ctx, id); err != nil {
			log.Error("failed to delete technology", "error", err, "technology_id", id)
			return NewServiceError(entityTechnology, "delete", "failed to delete technology", err)
		}
		deleted = technology
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("technology deleted", "technology_id", id)
	return deleted, nil
}
