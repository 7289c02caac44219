package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("validation failed", ValidationDetail{
		Field:   "email",
		Message: "email is required",
	})

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 1)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "email", ve.Details[0].Field)
}

func TestIsValidationError_OtherError(t *testing.T) {
	_, ok := IsValidationError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestConflictError(t *testing.T) {
	var err error = NewConflictError("email already registered")

	assert.Equal(t, "email already registered", err.Error())

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.NotNil(t, ce)
}

func TestUnauthorizedError(t *testing.T) {
	var err error = NewUnauthorizedError("invalid email or password")

	ue, ok := IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid email or password", ue.Message)

	_, ok = IsConflictError(err)
	assert.False(t, ok)
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("writing orders document", cause)

	assert.Equal(t, "writing orders document: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("placing order: %w", err)
	var se *StorageError
	assert.True(t, errors.As(wrapped, &se))
}

func TestStorageError_NoCause(t *testing.T) {
	err := NewStorageError("reading users document", nil)
	assert.Equal(t, "reading users document", err.Error())
}
