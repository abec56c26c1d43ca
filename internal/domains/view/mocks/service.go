package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"songblog-backend/internal/domains/view/model"
)

// Service is a testify mock of service.ServiceInterface.
type Service struct {
	mock.Mock
}

func (m *Service) Home(ctx context.Context) (*model.HomeView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HomeView), args.Error(1)
}

func (m *Service) Archive(ctx context.Context) ([]model.ArchiveItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArchiveItem), args.Error(1)
}

func (m *Service) Post(ctx context.Context, id int64) (*model.PostView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostView), args.Error(1)
}

func (m *Service) ExportArchive(ctx context.Context) (*excelize.File, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*excelize.File), args.Error(1)
}
