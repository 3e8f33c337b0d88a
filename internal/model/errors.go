package model

import "errors"

var (
	// ErrNotFound is returned when a task can't be found by its ID or index.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when user input (a draft, state, theme or format) is not valid.
	ErrNotValid = errors.New("not valid")
)
