package store

import (
	"context"
	"database/sql"

	"github.com/ccrayp/portfolio-api/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
type ProjectStore interface {
	// Create inserts project and sets project.ID to the assigned key.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project by its id.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Project, error)

	// List returns every project ordered by id.
	List(ctx context.Context) ([]*domain.Project, error)

	// Update overwrites every field of the stored project with the same id.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes the project with the given id.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a ProjectStore bound to tx.
	WithTx(tx *sql.Tx) ProjectStore
}
