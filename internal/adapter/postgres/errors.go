package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aidenliw/msl-mohawk/internal/domain"
)

// pgCodes maps PostgreSQL SQLSTATE codes to domain sentinels.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation: duplicate product name or key
	"23503": domain.ErrNotFound,      // foreign_key_violation: key for a deleted product
	"23514": domain.ErrValidation,    // check_violation: student number out of range
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"22001": domain.ErrValidation,    // string_data_right_truncation
}

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row (an id, a student number, a product name) in the message.
// Context cancellation and deadlines are wrapped but never mapped, so callers
// can still tell a timeout from a missing row.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodes[pgErr.Code]; ok {
			return fmt.Errorf("%s %v: %w", entity, key, sentinel)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
