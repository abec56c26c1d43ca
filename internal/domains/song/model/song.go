package model

import "time"

// Mode - cách tạo song entry
type Mode string

const (
	ModeManual Mode = "manual"
	ModeLinked Mode = "linked"
)

func (m Mode) IsValid() bool {
	return m == ModeManual || m == ModeLinked
}

// SongEntry - "song of the day", cùng shape cho cả hai mode.
// ImageURL nil khi linked mode không tìm được cover.
type SongEntry struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Group     string    `json:"group"`
	ImageURL  *string   `json:"image_url,omitempty"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
