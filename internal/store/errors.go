package store

import "errors"

// ErrNotFound is returned when a requested row does not exist or is
// outside the queried state (soft-deleted, no longer pending).
var ErrNotFound = errors.New("store: resource not found")
