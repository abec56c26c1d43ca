package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songblog-backend/internal/shared/apperror"
)

func TestAsValidation_Wrapped(t *testing.T) {
	cause := errors.New("bad password")
	err := fmt.Errorf("create post: %w", apperror.NewValidation(apperror.CodeInvalidCredentials, "nope", cause))

	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidCredentials, ve.Code)
	assert.Equal(t, "nope", ve.Message)
	assert.ErrorIs(t, err, cause)
}

func TestAsValidation_OtherError(t *testing.T) {
	_, ok := apperror.AsValidation(errors.New("db down"))
	assert.False(t, ok)
}

func TestFromOzzo_FieldOrder(t *testing.T) {
	err := validation.Errors{
		"Text":  errors.New("text missing"),
		"Title": errors.New("title missing"),
	}

	ve := apperror.FromOzzo(apperror.CodeMissingFields, err, "Title", "Text")
	assert.Equal(t, "title missing", ve.Message)
	assert.Equal(t, apperror.CodeMissingFields, ve.Code)

	ve = apperror.FromOzzo(apperror.CodeMissingFields, err)
	assert.Equal(t, "text missing", ve.Message)
}

func TestFromOzzo_PlainError(t *testing.T) {
	ve := apperror.FromOzzo(apperror.CodeInvalidURL, errors.New("boom"))
	assert.Equal(t, "boom", ve.Message)
}
