package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput           = errors.New("input text is empty")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNoCandidatesSelected = errors.New("no candidates selected")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidTimeframe     = errors.New("invalid timeframe")
)
