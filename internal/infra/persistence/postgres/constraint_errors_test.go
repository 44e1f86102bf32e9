package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "arches/internal/domain/errors"
)

func pgErr(code string) error {
	return errors.Wrap(&pgconn.PgError{Code: code, Message: "boom"}, "exec")
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(pgErr(sqlStateUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(pgErr(sqlStateForeignKeyViolation)))

	assert.True(t, isForeignKeyConstraintViolation(pgErr(sqlStateForeignKeyViolation)))
	assert.True(t, isNotNullConstraintViolation(pgErr(sqlStateNotNullViolation)))
	assert.True(t, isCheckConstraintViolation(pgErr(sqlStateCheckViolation)))
}

func TestIsConcurrencyConflict(t *testing.T) {
	assert.True(t, isConcurrencyConflict(pgErr(sqlStateSerializationFailure)))
	assert.True(t, isConcurrencyConflict(pgErr(sqlStateDeadlockDetected)))
	assert.True(t, isConcurrencyConflict(pgErr(sqlStateUniqueViolation)))
	assert.False(t, isConcurrencyConflict(pgErr(sqlStateForeignKeyViolation)))
	assert.False(t, isConcurrencyConflict(errors.New("connection reset")))
}

func TestStoreError(t *testing.T) {
	err := storeError(errors.Wrap(context.DeadlineExceeded, "query"), "find within")

	assert.True(t, domainerrors.IsStoreUnavailable(err))
	appErr, ok := domainerrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, "find within: timed out", appErr.Details())

	canceled := storeError(pgErr(sqlStateQueryCanceled), "toggle")
	appErr, _ = domainerrors.AsAppError(canceled)
	assert.Equal(t, "toggle: timed out", appErr.Details())
}
