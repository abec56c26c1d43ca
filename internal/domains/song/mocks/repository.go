package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"songblog-backend/internal/domains/song/model"
)

// Repository is a testify mock of repository.RepositoryInterface.
type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, s *model.SongEntry) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *Repository) FindLatest(ctx context.Context) (*model.SongEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SongEntry), args.Error(1)
}
