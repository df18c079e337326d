package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrRecordNotFound is returned when a row does not exist
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateEntry is returned when an insert hits a uniqueness constraint
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// translateError maps driver-level constraint violations onto the package
// sentinels so callers never have to inspect pg error codes.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ErrDuplicateEntry
		case "23503": // foreign_key_violation
			return ErrRecordNotFound
		}
	}
	return err
}
