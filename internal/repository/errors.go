package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrReferentialViolation means an insert referenced a row that does not
	// exist (expense -> trip, trip -> user).
	ErrReferentialViolation = errors.New("referenced record does not exist")
	ErrDuplicate            = errors.New("record already exists")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// mapError translates pgx errors into the repository's sentinel errors so
// the service layer never has to inspect driver internals.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrReferentialViolation
		case pgUniqueViolation:
			return ErrDuplicate
		}
	}
	return err
}
