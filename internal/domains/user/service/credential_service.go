package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"songblog-backend/internal/domains/user"
	"songblog-backend/pkg/logger"
)

// DefaultCost là bcrypt cost dùng khi tạo user
const DefaultCost = 12

// credentialService implement user.Service
type credentialService struct {
	repo user.Repository
	cost int

	// dummyHash dùng khi username không tồn tại, để hai nhánh fail
	// đều tốn đúng một lần bcrypt compare
	dummyHash []byte
}

func NewCredentialService(repo user.Repository, cost int) (user.Service, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("songblog-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &credentialService{
		repo:      repo,
		cost:      cost,
		dummyHash: dummy,
	}, nil
}

// ========================================
// VERIFY
// ========================================

func (s *credentialService) Verify(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Chạy compare với dummy hash để timing giống nhánh sai password
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// bcrypt.CompareHashAndPassword là constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return u, nil
}

// ========================================
// AUTHOR RESOLUTION
// ========================================

func (s *credentialService) AuthorName(ctx context.Context, id int64) string {
	if id <= 0 {
		return user.UnknownAuthor
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			logger.Error("Resolve author failed", err)
		}
		return user.UnknownAuthor
	}

	return u.Username
}

// ========================================
// PROVISIONING
// ========================================

func (s *credentialService) Create(ctx context.Context, username, password string) (*user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if _, err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User created", map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
	})
	return u, nil
}
