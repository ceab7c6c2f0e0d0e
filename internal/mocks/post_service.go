package mocks

import (
	"context"

	"github.com/ccrayp/portfolio-api/internal/domain"
	"github.com/ccrayp/portfolio-api/internal/service"
)

// MockPostService implements service.PostService for testing.
type MockPostService struct {
	CreateFn     func(ctx context.Context, fields domain.PostFields) (*domain.Post, error)
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Post, error)
	GetAllFn     func(ctx context.Context) ([]*domain.Post, error)
	UpdateByIDFn func(ctx context.Context, id int64, fields domain.PostFields) error
	DeleteByIDFn func(ctx context.Context, id int64) (*domain.Post, error)

	Calls int
}

var _ service.PostService = (*MockPostService)(nil)

func (m *MockPostService) Create(ctx context.Context, fields domain.PostFields) (*domain.Post, error) {
	m.Calls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, fields)
	}
	return domain.NewPost(fields), nil
}

func (m *MockPostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	m.Calls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, service.ErrPostNotFound
}

func (m *MockPostService) GetAll(ctx context.Context) ([]*domain.Post, error) {
	m.Calls++
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []*domain.Post{}, nil
}

func (m *MockPostService) UpdateByID(ctx context.Context, id int64, fields domain.PostFields) error {
	m.Calls++
	if m.UpdateByIDFn != nil {
		return m.UpdateByIDFn(ctx, id, fields)
	}
	return nil
}

func (m *MockPostService) DeleteByID(ctx context.Context, id int64) (*domain.Post, error) {
	m.Calls++
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil, service.ErrPostNotFound
}
