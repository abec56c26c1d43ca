package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"songblog-backend/internal/domains/user"
)

// Repository is a testify mock of user.Repository.
type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, u *user.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Repository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *Repository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
