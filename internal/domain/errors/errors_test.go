package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"votegate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrInsufficientImages.WithDetails(map[string]int{"count": 4, "required": 5})
	wrapped := errors.Wrap(detailed, "enroll")

	assert.True(t, errors.Is(wrapped, ErrInsufficientImages))
	assert.False(t, errors.Is(wrapped, ErrNoTrainingData))

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_IMAGES", appErr.ErrorCode())
	assert.Equal(t, map[string]int{"count": 4, "required": 5}, appErr.Details())
	assert.Nil(t, ErrInsufficientImages.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrAlreadyVoted.WrapMessage("cast")

	assert.True(t, errors.Is(err, ErrAlreadyVoted))
	assert.Contains(t, err.Error(), "cast")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert vote")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert vote", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
