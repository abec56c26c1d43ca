package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"songblog-backend/internal/domains/song/model"
)

// Service is a testify mock of service.ServiceInterface.
type Service struct {
	mock.Mock
}

func (m *Service) CreateSong(ctx context.Context, req model.CreateSongRequest) (*model.SongEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SongEntry), args.Error(1)
}
