package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(wrapped))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestErrNoRowsToNotFound(t *testing.T) {
	err := errNoRowsToNotFound(pgx.ErrNoRows, "tenant t-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "tenant t-1")

	err = errNoRowsToNotFound(errors.New("connection reset"), "tenant t-1")
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 500, apperrors.HTTPStatus(err))
}
