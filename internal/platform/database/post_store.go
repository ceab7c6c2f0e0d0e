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

const postColumns = `id, label, text, img, date, link, mode`

// SQLPostStore implements store.PostStore on database/sql.
type SQLPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostStore creates a PostStore over db, which may be a pool or a
// transaction owned by the caller. If logger is nil, slog.Default is used.
func NewPostStore(db store.DBTX, logger *slog.Logger) *SQLPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

var _ store.PostStore = (*SQLPostStore)(nil)

// Create implements store.PostStore.Create.
func (s *SQLPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO posts (label, text, img, date, link, mode)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		post.Label, post.Text, post.Img, post.Date, post.Link, post.Mode,
	).Scan(&post.ID)
	if err != nil {
		log.Error("failed to create post", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("post created successfully", slog.Int64("post_id", post.ID))
	return nil
}

// GetByID implements store.PostStore.GetByID.
func (s *SQLPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving post by ID", slog.Int64("post_id", id))

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return post, nil
}

// List implements store.PostStore.List.
func (s *SQLPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	posts := []*domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	log.Debug("listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

// Update implements store.PostStore.Update.
func (s *SQLPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET label = $1, text = $2, img = $3, date = $4, link = $5, mode = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query,
		post.Label, post.Text, post.Img, post.Date, post.Link, post.Mode, post.ID,
	)
	if err != nil {
		log.Error("failed to update post", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post updated successfully", slog.Int64("post_id", post.ID))
	return nil
}

// Delete implements store.PostStore.Delete.
func (s *SQLPostStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return nil
}

// WithTx implements store.PostStore.WithTx.
func (s *SQLPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &SQLPostStore{db: tx, logger: s.logger}
}

// rowScanner is the Scan method shared by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Label, &p.Text, &p.Img, &p.Date, &p.Link, &p.Mode); err != nil {
		return nil, err
	}
	return &p, nil
}
