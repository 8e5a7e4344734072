package errors

import "errors"

var (
	ErrNotFound  = errors.New("booking not found")
	ErrInvalidID = errors.New("invalid booking id")

	// ErrStayNotFound covers both unknown slugs and stays that exist but are
	// not active; the booking form only ever offers active stays.
	ErrStayNotFound = errors.New("stay not found")
)
