package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/stash-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to the domain error they represent.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
}

// MapError wraps err as "<entity> <id>: <cause>", translating pgx.ErrNoRows
// and known SQLSTATE codes to domain errors. Context errors and unknown
// driver errors are wrapped unchanged.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	cause := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		cause = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
				cause = mapped
			}
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, cause)
}
