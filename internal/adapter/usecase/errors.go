package usecase

import (
	"errors"

	"adledger/internal/core/domain"
)

// storageErr passes domain errors through unchanged and wraps everything
// else as a StorageError for op.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		ve *domain.ValidationError
		pe *domain.PermissionError
		ne *domain.NotFoundError
		se *domain.StorageError
	)
	if errors.As(err, &ve) || errors.As(err, &pe) || errors.As(err, &ne) || errors.As(err, &se) {
		return err
	}
	return &domain.StorageError{Op: op, Err: err}
}
