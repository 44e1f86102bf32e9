package errors

import (
	"net/http"

	"arches/internal/errors"
)

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	return errors.AsType[AppError](err)
}

// IsStoreUnavailable reports whether err carries a StoreError.
func IsStoreUnavailable(err error) bool {
	_, ok := errors.AsType[*StoreError](err)

	return ok
}

// IsRetryable reports whether the caller may repeat the request unchanged.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrToggleConflict) {
		return true
	}

	appErr, ok := AsAppError(err)

	return ok && appErr.HTTPCode() == http.StatusServiceUnavailable
}
