package core

import "errors"

// Common errors.
var (
	ErrNotFound  = errors.New("note not found")
	ErrReadOnly  = errors.New("notebook is in read-only mode")
	ErrInvalidID = errors.New("invalid note id")
)
