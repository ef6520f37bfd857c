package repository

import "errors"

// Outcomes detected inside serialized transactions. Module services map
// these onto their own error vocabulary.
var (
	ErrNotFound   = errors.New("record not found")
	ErrOverlap    = errors.New("reservation window overlaps an existing one")
	ErrStaleState = errors.New("resource state does not allow this transition")
)
