package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// User-facing messages (form views)
const (
	MsgInvalidCredentials = "Невалидни потребителско име или парола."
	MsgInvalidMode        = "Невалиден режим на въвеждане."
	MsgTitleRequired      = "Заглавието е задължително."
	MsgGroupRequired      = "Групата е задължителна."
	MsgImageRequired      = "Изображението е задължително."
	MsgInvalidImage       = "Изображението трябва да е JPEG или PNG с допустим размер."
	MsgURLRequired        = "Линкът към Spotify е задължителен."
	MsgURLInvalid         = "Линкът към Spotify е невалиден."
)

// CreateSongRequest - fields của POST /song.
// Group đến từ form field "text"; Image là nội dung multipart file "image".
type CreateSongRequest struct {
	Mode       Mode
	Username   string
	Password   string
	Title      string
	Group      string
	SpotifyURL string
	Image      []byte
}

// Normalize trim các field một dòng; username/password giữ nguyên cho Verify
func (r *CreateSongRequest) Normalize() {
	r.Mode = Mode(strings.TrimSpace(string(r.Mode)))
	r.Title = strings.TrimSpace(r.Title)
	r.Group = strings.TrimSpace(r.Group)
	r.SpotifyURL = strings.TrimSpace(r.SpotifyURL)
}

// ValidateManual - title, group và image đều bắt buộc
func (r CreateSongRequest) ValidateManual() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error(MsgTitleRequired),
		),
		validation.Field(&r.Group,
			validation.Required.Error(MsgGroupRequired),
		),
		validation.Field(&r.Image,
			validation.Required.Error(MsgImageRequired),
		),
	)
}

// ValidateLinked - spotify_url bắt buộc và phải là URL hợp lệ
func (r CreateSongRequest) ValidateLinked() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SpotifyURL,
			validation.Required.Error(MsgURLRequired),
			is.URL.Error(MsgURLInvalid),
		),
	)
}
