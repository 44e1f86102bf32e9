package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "arches/internal/domain/errors"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateNotNullViolation     = "23502"
	sqlStateCheckViolation       = "23514"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateQueryCanceled        = "57014"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == sqlStateNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == sqlStateCheckViolation
}

// isConcurrencyConflict reports errors that a retry of the whole transaction can resolve.
func isConcurrencyConflict(err error) bool {
	switch pgErrorCode(err) {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateUniqueViolation:
		return true
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || pgErrorCode(err) == sqlStateQueryCanceled
}

// storeError maps a driver error that has no domain meaning to a StoreError.
func storeError(err error, details string) error {
	if isTimeout(err) {
		details += ": timed out"
	}

	return domainerrors.NewStoreError(err, details)
}
