package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"songblog-backend/pkg/logger"
)

// MediaUploader ghi cover vào fixed media slot.
// Mọi upload đều ghi đè cùng một key, không giữ lịch sử và không lock (last writer wins).
type MediaUploader struct {
	storage   ObjectStorage
	processor *ImageProcessor
	client    *http.Client
	coverKey  string
}

func NewMediaUploader(storage ObjectStorage, processor *ImageProcessor, client *http.Client, coverKey string) *MediaUploader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &MediaUploader{
		storage:   storage,
		processor: processor,
		client:    client,
		coverKey:  coverKey,
	}
}

// UploadCover validate + normalize ảnh rồi upload vào cover slot.
// Payload không phải JPEG/PNG hợp lệ trả về lỗi wrap ErrInvalidImage.
func (u *MediaUploader) UploadCover(ctx context.Context, data []byte) (string, error) {
	processed, contentType, err := u.processor.Normalize(data)
	if err != nil {
		return "", err
	}

	url, err := u.storage.Upload(ctx, u.coverKey, processed, contentType)
	if err != nil {
		return "", fmt.Errorf("upload cover: %w", err)
	}

	logger.Info("Cover uploaded", map[string]interface{}{
		"key":          u.coverKey,
		"size":         len(processed),
		"content_type": contentType,
	})
	return url, nil
}

// UploadCoverFromURL download ảnh từ remote URL rồi re-upload vào cùng cover slot
func (u *MediaUploader) UploadCoverFromURL(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build cover request: %w", err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download cover: unexpected status %d", resp.StatusCode)
	}

	// đọc thêm 1 byte để ValidateImage phát hiện được ảnh vượt MaxSize
	data, err := io.ReadAll(io.LimitReader(resp.Body, u.processor.MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("read cover body: %w", err)
	}

	return u.UploadCover(ctx, data)
}
