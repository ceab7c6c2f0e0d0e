package store

import (
	"context"
	"database/sql"

	"github.com/ccrayp/portfolio-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create inserts post and sets post.ID to the assigned key.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its id.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// List returns every post ordered by id. An empty table yields an empty slice.
	List(ctx context.Context) ([]*domain.Post, error)

	// Update overwrites every field of the stored post with the same id.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes the post with the given id.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a PostStore bound to tx.
	WithTx(tx *sql.Tx) PostStore
}
