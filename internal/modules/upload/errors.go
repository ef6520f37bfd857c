package upload

import "errors"

var (
	ErrNotFound        = errors.New("upload not found")
	ErrNotOwner        = errors.New("upload belongs to another user")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("only image files are accepted")
	ErrEmptyFile       = errors.New("file is empty")
)
