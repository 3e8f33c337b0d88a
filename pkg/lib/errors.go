package lib

import (
	"errors"

	"github.com/slok/tasks/internal/model"
)

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when the input is not valid.
	ErrNotValid = errors.New("not valid")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
