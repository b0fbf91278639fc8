package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"adledger/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// mapWriteError turns constraint violations into domain errors. Other
// errors are returned unchanged.
func mapWriteError(err error, resource string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeForeignKeyViolation:
		return &domain.NotFoundError{Resource: resource + " reference", ID: pgErr.ConstraintName}
	case codeCheckViolation:
		return &domain.ValidationError{Field: pgErr.ConstraintName, Reason: "violates " + resource + " constraint"}
	case codeUniqueViolation:
		return &domain.ValidationError{Field: pgErr.ConstraintName, Reason: resource + " already exists"}
	}
	return err
}
