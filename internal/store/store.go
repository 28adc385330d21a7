package store

import "errors"

var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the operation would collide with a live entity
	// (e.g. restoring over an existing id).
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference means a folder reference points at a folder
	// that does not exist, or a reparent would create a cycle.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidOrder means a requested position is out of range or a
	// bulk reorder is not a permutation of the sibling positions.
	ErrInvalidOrder = errors.New("invalid order")
)
