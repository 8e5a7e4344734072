package errors

import "errors"

var (
	ErrNotFound = errors.New("stay not found")

	ErrInvalidID = errors.New("invalid stay ID format")

	ErrSlugTaken = errors.New("stay slug already in use")
)
