package user

import "time"

// User là credential record đã được provision sẵn (xem cmd/useradd).
// Application không bao giờ update hay delete user.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // không bao giờ serialize (kể cả vào cache)
	CreatedAt    time.Time `json:"created_at"`
}

// UnknownAuthor hiển thị khi owner của post/song không resolve được
const UnknownAuthor = "Unknown"
