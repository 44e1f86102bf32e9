package impl

import (
	"context"
	"time"

	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/domain/repository"
	"arches/internal/errors"
)

// translateError maps persistence and entity errors onto AppErrors.
// Errors that are already AppErrors pass through with op added as context.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}

	if _, ok := domainerrors.AsAppError(err); ok {
		return errors.WithMessage(err, op)
	}

	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrLocationNotFound):
		return domainerrors.ErrLocationNotFound
	case errors.Is(err, repository.ErrUsernameTaken):
		return domainerrors.ErrUsernameTaken
	case errors.Is(err, repository.ErrConcurrentUpdate):
		return domainerrors.ErrToggleConflict
	case errors.Is(err, entity.ErrCoordinateOutOfRange):
		return domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
	case errors.Is(err, entity.ErrInvalidRadius):
		return domainerrors.ErrInvalidRadius.WithDetails(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return domainerrors.NewStoreError(err, op+" timed out")
	}

	return errors.Wrap(err, op)
}

// withQueryTimeout bounds a single store call. A zero timeout leaves ctx as is.
func withQueryTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
