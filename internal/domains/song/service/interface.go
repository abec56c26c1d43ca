package service

import (
	"context"

	"songblog-backend/internal/domains/song/model"
	"songblog-backend/internal/infrastructure/metadata"
)

// ServiceInterface - publishing workflow cho song entries
type ServiceInterface interface {
	// CreateSong verify credential, xử lý theo mode rồi persist.
	// Bad input / sai credential trả về *apperror.ValidationError, không ghi gì cả.
	CreateSong(ctx context.Context, req model.CreateSongRequest) (*model.SongEntry, error)
}

// CoverUploader - ghi cover vào fixed media slot, trả về public URL
type CoverUploader interface {
	UploadCover(ctx context.Context, data []byte) (string, error)
	UploadCoverFromURL(ctx context.Context, imageURL string) (string, error)
}

// MetadataFetcher - lookup title/artist/cover từ track URL
type MetadataFetcher interface {
	Fetch(ctx context.Context, sourceURL string) (*metadata.TrackMetadata, error)
}
