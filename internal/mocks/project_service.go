package mocks

import (
	"context"

	"github.com/ccrayp/portfolio-api/internal/domain"
	"github.com/ccrayp/portfolio-api/internal/service"
)

// MockProjectService implements service.ProjectService for testing.
type MockProjectService struct {
	CreateFn     func(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error)
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Project, error)
	GetAllFn     func(ctx context.Context) ([]*domain.Project, error)
	UpdateByIDFn func(ctx context.Context, id int64, fields domain.ProjectFields) error
	DeleteByIDFn func(ctx context.Context, id int64) (*domain.Project, error)

	Calls int
}

var _ service.ProjectService = (*MockProjectService)(nil)

func (m *MockProjectService) Create(ctx context.Context, fields domain.ProjectFields) (*domain.Project, error) {
	m.Calls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, fields)
	}
	return domain.NewProject(fields), nil
}

func (m *MockProjectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	m.Calls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, service.ErrProjectNotFound
}

func (m *MockProjectService) GetAll(ctx context.Context) ([]*domain.Project, error) {
	m.Calls++
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []*domain.Project{}, nil
}

func (m *MockProjectService) UpdateByID(ctx context.Context, id int64, fields domain.ProjectFields) error {
	m.Calls++
	if m.UpdateByIDFn != nil {
		return m.UpdateByIDFn(ctx, id, fields)
	}
	return nil
}

func (m *MockProjectService) DeleteByID(ctx context.Context, id int64) (*domain.Project, error) {
	m.Calls++
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil, service.ErrProjectNotFound
}
