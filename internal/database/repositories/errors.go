package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write would break a unique constraint.
var ErrConflict = errors.New("already exists")

const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

// wrapWriteError tags unique violations with ErrConflict so callers can tell
// them apart from other failures.
func wrapWriteError(action string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %s: %w", action, pgErr.ConstraintName, ErrConflict)
	}
	return fmt.Errorf("%s: %w", action, err)
}
