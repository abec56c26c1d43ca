package user

import "context"

// Repository định nghĩa contract cho credential store
type Repository interface {
	// Create insert user mới, trả về ID
	// Returns: ErrUsernameTaken nếu username đã tồn tại
	Create(ctx context.Context, u *User) (int64, error)

	// FindByID dùng để resolve author name
	// Returns: ErrUserNotFound nếu không tìm thấy
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByUsername exact match, dùng cho Verify
	// Returns: ErrUserNotFound nếu không tìm thấy
	FindByUsername(ctx context.Context, username string) (*User, error)
}
