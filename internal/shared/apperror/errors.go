package apperror

import (
	"errors"
	"fmt"
)

// Error codes for validation failures reported back to the form views.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidMode        = "INVALID_MODE"
	CodeInvalidImage       = "INVALID_IMAGE"
	CodeInvalidURL         = "INVALID_URL"
)

// ValidationError is a bad-input failure: the caller gets HTTP 400 and Message,
// and nothing has been written.
type ValidationError struct {
	Code    string
	Message string // user-facing
	Err     error  // underlying cause, not shown to users
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidation wraps err (may be nil) into a ValidationError.
func NewValidation(code, message string, err error) *ValidationError {
	return &ValidationError{Code: code, Message: message, Err: err}
}

// AsValidation reports whether err carries a ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
