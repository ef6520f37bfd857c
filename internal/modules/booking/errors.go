package booking

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("reservation conflicts with an existing one")
	ErrInvalidRange = errors.New("invalid reservation time range")
	ErrForbidden    = errors.New("reservation belongs to another user")
)
