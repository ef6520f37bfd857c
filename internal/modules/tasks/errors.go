package tasks

import "errors"

var (
	ErrNotFound    = errors.New("resource or assignee not found")
	ErrInvalidRole = errors.New("assignee must be a technician")
	ErrInvalid     = errors.New("completion record is missing required fields")
	ErrConflict    = errors.New("resource state does not allow this operation")
)
