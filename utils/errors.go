package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// The four failure categories surfaced by the API. They stay
// distinguishable to the caller via errors.As; none of them are
// retried internally.

// ConflictError reports a uniqueness violation, naming the offending
// field and value.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Field, e.Value)
}

// ReferentialError reports a foreign-key violation: an unknown related
// id on write, or a delete blocked by existing dependents.
type ReferentialError struct {
	Relation string
	Detail   string
}

func (e *ReferentialError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("referential integrity violation on %s: %s", e.Relation, e.Detail)
	}
	return fmt.Sprintf("referential integrity violation on %s", e.Relation)
}

// NotFoundError reports an update/delete targeting a nonexistent id.
// Reads return null instead of this error.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ValidationError reports a malformed input value (bad enum, bad date).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnavailableError wraps a connectivity or unknown persistence failure.
// The caller should retry later; the server never retries on its own.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return "service temporarily unavailable, please retry"
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TranslateDBError maps driver and gorm errors onto the taxonomy above.
// Services pre-check uniqueness so conflicts normally carry the exact
// field and value; this translation is the safety net for races and for
// constraints the pre-checks don't cover.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConflictError{Field: pgErr.ConstraintName, Value: pgErr.Detail}
		case pgForeignKeyViolation:
			return &ReferentialError{Relation: pgErr.TableName, Detail: pgErr.Detail}
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Field: "unique constraint", Value: err.Error()}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ReferentialError{Relation: "foreign key", Detail: err.Error()}
	}

	return &UnavailableError{Err: err}
}

// ErrorCode returns a stable machine-readable code for an API error,
// carried in the GraphQL error extensions.
func ErrorCode(err error) string {
	var (
		conflict    *ConflictError
		referential *ReferentialError
		notFound    *NotFoundError
		validation  *ValidationError
		unavailable *UnavailableError
	)
	switch {
	case errors.As(err, &conflict):
		return "CONFLICT"
	case errors.As(err, &referential):
		return "REFERENTIAL_INTEGRITY"
	case errors.As(err, &notFound):
		return "NOT_FOUND"
	case errors.As(err, &validation):
		return "BAD_USER_INPUT"
	case errors.As(err, &unavailable):
		return "UNAVAILABLE"
	}
	return "INTERNAL"
}

// StatusForError maps an API error to an HTTP status for the non-GraphQL
// endpoints.
func StatusForError(err error) int {
	switch ErrorCode(err) {
	case "CONFLICT", "REFERENTIAL_INTEGRITY":
		return http.StatusConflict
	case "NOT_FOUND":
		return http.StatusNotFound
	case "BAD_USER_INPUT":
		return http.StatusBadRequest
	case "UNAVAILABLE":
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
