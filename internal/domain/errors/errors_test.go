package errors

import (
	"net/http"
	"testing"

	"schoolhub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_Because(t *testing.T) {
	err := ErrAccountCreationFailed.Because(ErrUserAlreadyExists.WrapMessage("email already exists"))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Not found", appErr.Message())
	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email is required")

	assert.Equal(t, "email is required", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to count students")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to count students", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
