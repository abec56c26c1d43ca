package repository

import (
	"context"

	"songblog-backend/internal/domains/post/model"
)

// RepositoryInterface - content store cho posts
type RepositoryInterface interface {
	// Create insert một post, set p.ID
	Create(ctx context.Context, p *model.Post) error

	// FindByID returns model.ErrPostNotFound khi không tồn tại
	FindByID(ctx context.Context, id int64) (*model.Post, error)

	// FindLatest trả về post mới nhất, (nil, nil) khi chưa có post nào
	FindLatest(ctx context.Context) (*model.Post, error)

	// ListNewestFirst - toàn bộ posts theo created_at DESC, id DESC
	ListNewestFirst(ctx context.Context) ([]model.Post, error)
}
