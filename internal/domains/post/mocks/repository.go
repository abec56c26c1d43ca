package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"songblog-backend/internal/domains/post/model"
)

// Repository is a testify mock of repository.RepositoryInterface.
type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, p *model.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *Repository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *Repository) FindLatest(ctx context.Context) (*model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *Repository) ListNewestFirst(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}
