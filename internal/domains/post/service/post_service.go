package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"songblog-backend/internal/domains/post/model"
	"songblog-backend/internal/domains/post/repository"
	"songblog-backend/internal/domains/user"
	"songblog-backend/internal/shared/apperror"
	"songblog-backend/pkg/logger"
)

type postService struct {
	repo        repository.RepositoryInterface
	credentials user.Service
	now         func() time.Time
}

func NewPostService(repo repository.RepositoryInterface, credentials user.Service) ServiceInterface {
	return &postService{
		repo:        repo,
		credentials: credentials,
		now:         time.Now,
	}
}

// NewPostServiceWithClock cho phép inject clock (tests)
func NewPostServiceWithClock(repo repository.RepositoryInterface, credentials user.Service, now func() time.Time) ServiceInterface {
	return &postService{
		repo:        repo,
		credentials: credentials,
		now:         now,
	}
}

func (s *postService) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	// 1. VALIDATE INPUT
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromOzzo(apperror.CodeMissingFields, err, "Title", "Text")
	}

	// 2. VERIFY CREDENTIALS
	u, err := s.credentials.Verify(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, apperror.NewValidation(apperror.CodeInvalidCredentials, model.MsgInvalidCredentials, err)
		}
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	// 3. PERSIST
	p := &model.Post{
		Title:     req.Title,
		Text:      req.Text,
		UserID:    u.ID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	logger.Info("Post created", map[string]interface{}{
		"post_id": p.ID,
		"user_id": u.ID,
	})
	return p, nil
}
