package user

import "context"

// Service định nghĩa business logic của credential store
type Service interface {
	// Verify kiểm tra username/password, mọi kiểu sai đều trả về ErrInvalidCredentials
	Verify(ctx context.Context, username, password string) (*User, error)

	// AuthorName trả về username hoặc UnknownAuthor, không bao giờ fail
	AuthorName(ctx context.Context, id int64) string

	// Create hash password và tạo user mới (provisioning)
	Create(ctx context.Context, username, password string) (*User, error)
}
