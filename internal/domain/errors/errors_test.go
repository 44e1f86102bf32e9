package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arches/internal/errors"
)

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	err := ErrLocationNotFound.WithDetails("location 42")

	assert.True(t, errors.Is(err, ErrLocationNotFound))
	assert.False(t, errors.Is(err, ErrUserNotFound))
	assert.Equal(t, "location not found: location 42", err.Error())
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	err := errors.Wrap(ErrInvalidRadius.WithDetails("-1"), "find nearby")

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_RADIUS", appErr.ErrorCode())
	assert.Equal(t, "-1", appErr.Details())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.Wrap(NewStoreError(cause, "find within"), "nearby")

	assert.True(t, IsStoreUnavailable(err))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsRetryable(err))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrToggleConflict.WithDetails("location 1")))
	assert.False(t, IsRetryable(ErrUnauthenticated))
	assert.False(t, IsRetryable(errors.New("plain")))
}
