package store

import (
	"context"
	"database/sql"

	"github.com/ccrayp/portfolio-api/internal/domain"
)

// TechnologyStore defines the interface for technology data persistence.
type TechnologyStore interface {
	// Create inserts tech and sets tech.ID to the assigned key.
	Create(ctx context.Context, tech *domain.Technology) error

	// GetByID retrieves a technology by its id.
	// Returns ErrTechnologyNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Technology, error)

	// List returns every technology ordered by id.
	List(ctx context.Context) ([]*domain.Technology, error)

	// ListByGroup returns the technologies whose group equals group exactly.
	ListByGroup(ctx context.Context, group string) ([]*domain.Technology, error)

	// Update overwrites every field of the stored technology with the same id.
	// Returns ErrTechnologyNotFound if it does not exist.
	Update(ctx context.Context, tech *domain.Technology) error

	// Delete removes the technology with the given id.
	// Returns ErrTechnologyNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TechnologyStore bound to tx.
	WithTx(tx *sql.Tx) TechnologyStore
}
