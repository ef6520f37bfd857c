package directory

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTransition = errors.New("state change not allowed")
	ErrInvalidRole       = errors.New("assignee must be a technician")
)
