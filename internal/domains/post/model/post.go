package model

import "time"

// Post là bài viết, immutable sau khi tạo.
// UserID = 0 khi owner đã bị xóa (user_id NULL).
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
