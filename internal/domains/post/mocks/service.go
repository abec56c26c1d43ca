package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"songblog-backend/internal/domains/post/model"
)

// Service is a testify mock of service.ServiceInterface.
type Service struct {
	mock.Mock
}

func (m *Service) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}
