package mocks

import (
	"context"

	"github.com/ccrayp/portfolio-api/internal/domain"
	"github.com/ccrayp/portfolio-api/internal/service"
)

// MockTechnologyService implements service.TechnologyService for testing.
type MockTechnologyService struct {
	CreateFn     func(ctx context.Context, fields domain.TechnologyFields) (*domain.Technology, error)
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Technology, error)
	GetAllFn     func(ctx context.Context) ([]*domain.Technology, error)
	UpdateByIDFn func(ctx context.Context, id int64, fields domain.TechnologyFields) error
	DeleteByIDFn func(ctx context.Context, id int64) (*domain.Technology, error)
	GetByGroupFn func(ctx context.Context, group string) ([]*domain.Technology, error)

	Calls int
}

var _ service.TechnologyService = (*MockTechnologyService)(nil)

func (m *MockTechnologyService) Create(ctx context.Context, fields domain.TechnologyFields) (*domain.Technology, error) {
	m.Calls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, fields)
	}
	return domain.NewTechnology(fields), nil
}

func (m *MockTechnologyService) GetByID(ctx context.Context, id int64) (*domain.Technology, error) {
	m.Calls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, service.ErrTechnologyNotFound
}

func (m *MockTechnologyService) GetAll(ctx context.Context) ([]*domain.Technology, error) {
	m.Calls++
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []*domain.Technology{}, nil
}

func (m *MockTechnologyService) UpdateByID(ctx context.Context, id int64, fields domain.TechnologyFields) error {
	m.Calls++
	if m.UpdateByIDFn != nil {
		return m.UpdateByIDFn(ctx, id, fields)
	}
	return nil
}

func (m *MockTechnologyService) DeleteByID(ctx context.Context, id int64) (*domain.Technology, error) {
	m.Calls++
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil, service.ErrTechnologyNotFound
}

func (m *MockTechnologyService) GetByGroup(ctx context.Context, group string) ([]*domain.Technology, error) {
	m.Calls++
	if m.GetByGroupFn != nil {
		return m.GetByGroupFn(ctx, group)
	}
	return []*domain.Technology{}, nil
}
