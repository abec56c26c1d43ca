package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"songblog-backend/internal/domains/song/model"
	"songblog-backend/internal/domains/song/repository"
	"songblog-backend/internal/domains/user"
	"songblog-backend/internal/infrastructure/storage"
	"songblog-backend/internal/shared/apperror"
	"songblog-backend/pkg/logger"
)

type songService struct {
	repo        repository.RepositoryInterface
	credentials user.Service
	uploader    CoverUploader
	fetcher     MetadataFetcher
	now         func() time.Time
}

func NewSongService(
	repo repository.RepositoryInterface,
	credentials user.Service,
	uploader CoverUploader,
	fetcher MetadataFetcher,
) ServiceInterface {
	return &songService{
		repo:        repo,
		credentials: credentials,
		uploader:    uploader,
		fetcher:     fetcher,
		now:         time.Now,
	}
}

// NewSongServiceWithClock cho phép inject clock (tests)
func NewSongServiceWithClock(
	repo repository.RepositoryInterface,
	credentials user.Service,
	uploader CoverUploader,
	fetcher MetadataFetcher,
	now func() time.Time,
) ServiceInterface {
	return &songService{
		repo:        repo,
		credentials: credentials,
		uploader:    uploader,
		fetcher:     fetcher,
		now:         now,
	}
}

func (s *songService) CreateSong(ctx context.Context, req model.CreateSongRequest) (*model.SongEntry, error) {
	req.Normalize()

	// 1. MODE
	if !req.Mode.IsValid() {
		return nil, apperror.NewValidation(apperror.CodeInvalidMode, model.MsgInvalidMode,
			fmt.Errorf("unknown mode %q", req.Mode))
	}

	// 2. VERIFY CREDENTIALS
	u, err := s.credentials.Verify(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, apperror.NewValidation(apperror.CodeInvalidCredentials, model.MsgInvalidCredentials, err)
		}
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	// 3. BUILD ENTRY THEO MODE
	var entry *model.SongEntry
	switch req.Mode {
	case model.ModeManual:
		entry, err = s.buildManual(ctx, req)
	case model.ModeLinked:
		entry, err = s.buildLinked(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	// 4. PERSIST
	entry.UserID = u.ID
	entry.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}

	logger.Info("Song entry created", map[string]interface{}{
		"song_id":   entry.ID,
		"user_id":   u.ID,
		"mode":      string(req.Mode),
		"has_cover": entry.ImageURL != nil,
	})
	return entry, nil
}

// ========================================
// MANUAL MODE
// ========================================

func (s *songService) buildManual(ctx context.Context, req model.CreateSongRequest) (*model.SongEntry, error) {
	if err := req.ValidateManual(); err != nil {
		return nil, apperror.FromOzzo(apperror.CodeMissingFields, err, "Title", "Group", "Image")
	}

	imageURL, err := s.uploader.UploadCover(ctx, req.Image)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidImage) {
			return nil, apperror.NewValidation(apperror.CodeInvalidImage, model.MsgInvalidImage, err)
		}
		return nil, fmt.Errorf("upload cover: %w", err)
	}

	return &model.SongEntry{
		Title:    req.Title,
		Group:    req.Group,
		ImageURL: &imageURL,
	}, nil
}

// ========================================
// LINKED MODE
// ========================================

func (s *songService) buildLinked(ctx context.Context, req model.CreateSongRequest) (*model.SongEntry, error) {
	if err := req.ValidateLinked(); err != nil {
		return nil, apperror.FromOzzo(apperror.CodeInvalidURL, err, "SpotifyURL")
	}

	md, err := s.fetcher.Fetch(ctx, req.SpotifyURL)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}

	entry := &model.SongEntry{
		Title: md.Title,
		Group: md.Artist,
	}

	if md.CoverURL != nil {
		// remote cover không đọc được cũng là upstream failure, không phải lỗi input
		imageURL, err := s.uploader.UploadCoverFromURL(ctx, *md.CoverURL)
		if err != nil {
			return nil, fmt.Errorf("re-upload cover: %w", err)
		}
		entry.ImageURL = &imageURL
	}

	return entry, nil
}
