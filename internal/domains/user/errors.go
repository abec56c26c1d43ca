package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// Service-level errors
var (
	// ErrInvalidCredentials dùng chung cho unknown username và sai password
	ErrInvalidCredentials = errors.New("invalid username or password")
)
