package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolationCode = "23505"
)

const (
	UniqueEmailConstraint = "users_email_key"

	// UniqueNotificationConstraint backs the at-most-one-notification-per-
	// (contract, kind) guarantee. Concurrent checker instances racing on the
	// same contract rely on it; the loser gets a 23505 instead of a second row.
	UniqueNotificationConstraint = "notifications_contract_id_kind_key"
)

var ErrRecordNotFound = pgx.ErrNoRows

// ErrorDescription returns the error code and constraint name from a Postgres error.
func ErrorDescription(err error) (errCode string, constraintName string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return
}

// IsUniqueViolation reports whether err is a unique violation on the given constraint.
func IsUniqueViolation(err error, constraintName string) bool {
	errCode, constraint := ErrorDescription(err)
	return errCode == UniqueViolationCode && constraint == constraintName
}
