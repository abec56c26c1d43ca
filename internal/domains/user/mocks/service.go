package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"songblog-backend/internal/domains/user"
)

// Service is a testify mock of user.Service.
type Service struct {
	mock.Mock
}

func (m *Service) Verify(ctx context.Context, username, password string) (*user.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *Service) AuthorName(ctx context.Context, id int64) string {
	args := m.Called(ctx, id)
	return args.String(0)
}

func (m *Service) Create(ctx context.Context, username, password string) (*user.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
