package service

import (
	"context"

	"songblog-backend/internal/domains/post/model"
)

// ServiceInterface - publishing workflow cho posts
type ServiceInterface interface {
	// CreatePost verify credential rồi persist post.
	// Bad input / sai credential trả về *apperror.ValidationError, không ghi gì cả.
	CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error)
}
