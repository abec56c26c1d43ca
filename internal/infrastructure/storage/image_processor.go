package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage đánh dấu payload không phải ảnh hợp lệ (sai format hoặc quá lớn)
var ErrInvalidImage = errors.New("invalid image payload")

// MaxCoverSide là kích thước lớn nhất của cover sau khi normalize
const MaxCoverSide = 1200

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024 // 5MB
	}
	return &ImageProcessor{MaxSize: maxSize}
}

// ValidateImage chỉ nhận JPEG/PNG, trả về format đã detect
func (p *ImageProcessor) ValidateImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidImage)
	}
	if int64(len(data)) > p.MaxSize {
		return "", fmt.Errorf("%w: exceeds %d bytes", ErrInvalidImage, p.MaxSize)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	switch format {
	case "jpeg", "png":
		return format, nil
	default:
		return "", fmt.Errorf("%w: format %s not allowed (only jpeg/png)", ErrInvalidImage, format)
	}
}

// Normalize giữ nguyên ảnh nhỏ hơn MaxCoverSide, ảnh lớn hơn thì resize (Lanczos)
// và encode lại JPEG chất lượng 90. Trả về bytes và content type.
func (p *ImageProcessor) Normalize(data []byte) ([]byte, string, error) {
	format, err := p.ValidateImage(data)
	if err != nil {
		return nil, "", err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= MaxCoverSide && cfg.Height <= MaxCoverSide {
		return data, "image/" + format, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: cannot decode: %v", ErrInvalidImage, err)
	}
	resized := imaging.Fit(img, MaxCoverSide, MaxCoverSide, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, "", fmt.Errorf("cannot encode cover: %w", err)
	}
	return b.Bytes(), "image/jpeg", nil
}
