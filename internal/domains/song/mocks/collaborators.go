package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"songblog-backend/internal/infrastructure/metadata"
)

// Uploader is a testify mock of service.CoverUploader.
type Uploader struct {
	mock.Mock
}

func (m *Uploader) UploadCover(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *Uploader) UploadCoverFromURL(ctx context.Context, imageURL string) (string, error) {
	args := m.Called(ctx, imageURL)
	return args.String(0), args.Error(1)
}

// Fetcher is a testify mock of service.MetadataFetcher.
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Fetch(ctx context.Context, sourceURL string) (*metadata.TrackMetadata, error) {
	args := m.Called(ctx, sourceURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metadata.TrackMetadata), args.Error(1)
}
