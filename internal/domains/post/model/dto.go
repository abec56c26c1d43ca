package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// User-facing messages (form views)
const (
	MsgInvalidCredentials = "Невалидни потребителско име или парола."
	MsgTitleRequired      = "Заглавието е задължително."
	MsgTextRequired       = "Текстът е задължителен."
	MsgInvalidForm        = "Невалидни данни във формата."
)

// CreatePostRequest - form fields của POST /write
type CreatePostRequest struct {
	Title    string `form:"title"`
	Text     string `form:"text"`
	Username string `form:"username"`
	Password string `form:"password"`
}

// Normalize chỉ trim title. Text lưu đúng như đã nhập, username/password
// đi thẳng vào Verify (exact match).
func (r *CreatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error(MsgTitleRequired),
		),
		validation.Field(&r.Text,
			validation.By(notBlank(MsgTextRequired)),
		),
	)
}

// notBlank fail khi value chỉ gồm whitespace, không sửa value
func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}
