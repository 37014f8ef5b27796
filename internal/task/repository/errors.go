package repository

import "errors"

// ErrNotFound is returned when no task matches the given filters.
var ErrNotFound = errors.New("task not found in repository")
