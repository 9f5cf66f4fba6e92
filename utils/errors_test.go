package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateDBErrorNil(t *testing.T) {
	assert.NoError(t, TranslateDBError(nil))
}

func TestTranslateDBErrorPgUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_brands_name",
		Detail:         "Key (name)=(Climb Lab) already exists.",
	}
	err := TranslateDBError(fmt.Errorf("insert: %w", pgErr))

	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, "idx_brands_name", conflict.Field)
}

func TestTranslateDBErrorPgForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:      "23503",
		TableName: "gyms",
		Detail:    "Key (brand_id)=(x) is not present in table brands.",
	}
	err := TranslateDBError(pgErr)

	var referential *ReferentialError
	assert.True(t, errors.As(err, &referential))
	assert.Equal(t, "gyms", referential.Relation)
}

func TestTranslateDBErrorGormSentinels(t *testing.T) {
	var conflict *ConflictError
	assert.True(t, errors.As(TranslateDBError(gorm.ErrDuplicatedKey), &conflict))

	var referential *ReferentialError
	assert.True(t, errors.As(TranslateDBError(gorm.ErrForeignKeyViolated), &referential))
}

func TestTranslateDBErrorUnknownIsUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := TranslateDBError(cause)

	var unavailable *UnavailableError
	assert.True(t, errors.As(err, &unavailable))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "retry")
}

func TestErrorCode(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{&ConflictError{Field: "name", Value: "x"}, "CONFLICT"},
		{&ReferentialError{Relation: "gyms"}, "REFERENTIAL_INTEGRITY"},
		{&NotFoundError{Entity: "brand", ID: "x"}, "NOT_FOUND"},
		{&ValidationError{Field: "type", Reason: "bad"}, "BAD_USER_INPUT"},
		{&UnavailableError{Err: errors.New("down")}, "UNAVAILABLE"},
		{errors.New("anything else"), "INTERNAL"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, ErrorCode(tc.err), "%v", tc.err)
	}

	// Wrapped errors keep their code.
	wrapped := fmt.Errorf("creating brand: %w", &ConflictError{Field: "name", Value: "x"})
	assert.Equal(t, "CONFLICT", ErrorCode(wrapped))
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusForError(&ConflictError{}))
	assert.Equal(t, http.StatusConflict, StatusForError(&ReferentialError{}))
	assert.Equal(t, http.StatusNotFound, StatusForError(&NotFoundError{}))
	assert.Equal(t, http.StatusBadRequest, StatusForError(&ValidationError{}))
	assert.Equal(t, http.StatusServiceUnavailable, StatusForError(&UnavailableError{}))
	assert.Equal(t, http.StatusInternalServerError, StatusForError(errors.New("boom")))
}
