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

// PostService provides post operations.
type PostService interface {
	// Create persists a new post and returns it with its assigned id.
	Create(ctx context.Context, fields domain.PostFields) (*domain.Post, error)

	// GetByID returns the post with id, or ErrPostNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetAll returns every post. An empty table is not an error.
	GetAll(ctx context.Context) ([]*domain.Post, error)

	// UpdateByID overwrites every field of the post with id.
	// Returns ErrPostNotFound if it does not exist.
	UpdateByID(ctx context.Context, id int64, fields domain.PostFields) error

	// DeleteByID removes the post with id and returns it as it was before
	// deletion. Returns ErrPostNotFound if it does not exist.
	DeleteByID(ctx context.Context, id int64) (*domain.Post, error)
}

type postServiceImpl struct {
	db     store.TxBeginner
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostService creates a PostService. db starts the transactions that
// posts is rebound to with WithTx.
func NewPostService(db store.TxBeginner, posts store.PostStore, logger *slog.Logger) (PostService, error) {
	if db == nil {
		return nil, &ServiceError{Entity: entityPost, Operation: "create_service", Message: "db cannot be nil"}
	}
	if posts == nil {
		return nil, &ServiceError{Entity: entityPost, Operation: "create_service", Message: "post store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		db:     db,
		posts:  posts,
		logger: logger.With("component", "post_service"),
	}, nil
}

func (s *postServiceImpl) Create(ctx context.Context, fields domain.PostFields) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	post := domain.NewPost(fields)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.posts.WithTx(tx).Create(ctx, post); err != nil {
			log.Error("failed to create post in transaction", "error", err)
			return NewServiceError(entityPost, "create", "failed to save post", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("post created", "post_id", post.ID)
	return post, nil
}

func (s *postServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).
				Error("failed to retrieve post", "error", err, "post_id", id)
		}
		return nil, NewServiceError(entityPost, "get", "failed to retrieve post", err)
	}
	return post, nil
}

func (s *postServiceImpl) GetAll(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list posts", "error", err)
		return nil, NewServiceError(entityPost, "list", "failed to list posts", err)
	}
	return posts, nil
}

func (s *postServiceImpl) UpdateByID(ctx context.Context, id int64, fields domain.PostFields) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPosts := s.posts.WithTx(tx)

		post, err := txPosts.GetByID(ctx, id)
		if err != nil {
			log.Debug("post lookup for update failed", "error", err, "post_id", id)
			return NewServiceError(entityPost, "update", "failed to retrieve post", err)
		}

		post.Apply(fields)
		if err := txPosts.Update(ctx, post); err != nil {
			log.Error("failed to update post", "error", err, "post_id", id)
			return NewServiceError(entityPost, "update", "failed to save post", err)
		}

		log.Info("post updated", "post_id", id)
		return nil
	})
}

func (s *postServiceImpl) DeleteByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *domain.Post
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPosts := s.posts.WithTx(tx)

		post, err := txPosts.GetByID(ctx, id)
		if err != nil {
			return NewServiceError(entityPost, "delete", "failed to retrieve post", err)
		}
		if err := txPosts.Delete(ctx, id); err != nil {
			log.Error("failed to delete post", "error", err, "post_id", id)
			return NewServiceError(entityPost, "delete", "failed to delete post", err)
		}
		deleted = post
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("post deleted", "post_id", id)
	return deleted, nil
}
