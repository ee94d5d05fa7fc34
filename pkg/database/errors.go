package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"library-catalog/internal/shared/apperror"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeNotNullViolation     = "23502"
	CodeCheckViolation       = "23514"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

// PgError extracts the server error from err's chain.
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// ViolatedConstraint returns the constraint name when err is a violation
// of the given SQLSTATE.
func ViolatedConstraint(err error, code string) (string, bool) {
	pgErr, ok := PgError(err)
	if !ok || pgErr.Code != code {
		return "", false
	}
	return pgErr.ConstraintName, true
}

func IsUniqueViolation(err error) bool {
	_, ok := ViolatedConstraint(err, CodeUniqueViolation)
	return ok
}

func IsForeignKeyViolation(err error) bool {
	_, ok := ViolatedConstraint(err, CodeForeignKeyViolation)
	return ok
}

// IsRetryable reports serialization failures and deadlocks.
func IsRetryable(err error) bool {
	pgErr, ok := PgError(err)
	if !ok {
		return false
	}
	return pgErr.Code == CodeSerializationFailure || pgErr.Code == CodeDeadlockDetected
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Translate folds a storage error into the typed taxonomy. Repositories
// map the constraints they know about first and fall back to this.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}

	pgErr, ok := PgError(err)
	if !ok {
		return apperror.Internal(err)
	}

	switch {
	case pgErr.Code == CodeUniqueViolation:
		return apperror.UniqueViolation("UNIQUE_CONSTRAINT_VIOLATION", "A record with the same value already exists").
			WithDetails(map[string]interface{}{"constraint": pgErr.ConstraintName}).
			Wrap(err)
	case pgErr.Code == CodeForeignKeyViolation:
		return apperror.Reference("REFERENCE_ERROR", "A referenced record does not exist").
			WithDetails(map[string]interface{}{"constraint": pgErr.ConstraintName}).
			Wrap(err)
	case pgErr.Code == CodeNotNullViolation,
		pgErr.Code == CodeCheckViolation,
		strings.HasPrefix(pgErr.Code, "22"): // data exception class
		return apperror.Validation("INVALID_DATA", "The supplied data was rejected by the database").Wrap(err)
	case pgErr.Code == CodeSerializationFailure, pgErr.Code == CodeDeadlockDetected:
		return apperror.ErrTransactionConflict.Wrap(err)
	default:
		return apperror.Internal(err)
	}
}
