package repository

import (
	"context"

	"songblog-backend/internal/domains/song/model"
)

// RepositoryInterface - content store cho song entries
type RepositoryInterface interface {
	Create(ctx context.Context, s *model.SongEntry) error

	// FindLatest trả về (nil, nil) khi chưa có song nào
	FindLatest(ctx context.Context) (*model.SongEntry, error)
}
