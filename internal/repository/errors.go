package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist. Callers
// match it with errors.Is; repositories wrap it with the entity name.
var ErrNotFound = errors.New("not found")
