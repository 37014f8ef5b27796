package repository

import (
	"time"

	"dayflow/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	OwnerID    string
	Title      string
	Category   model.Category
	Priority   model.Priority
	Timeframe  model.Timeframe
	DueDate    *time.Time
	DueTime    string
	Recurrence *model.RecurrencePattern
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID      string
	OwnerID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// A zero Limit means no pagination.
type ListTasksOptions struct {
	OwnerID   string
	Category  model.Category
	Timeframe model.Timeframe
	DueOn     *time.Time // same calendar day match
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Zero-valued fields are left untouched.
type UpdateTaskOptions struct {
	ID        string
	OwnerID   string
	Title     string
	Category  model.Category
	Priority  model.Priority
	Completed *bool
}

// DeleteTaskOptions holds parameters for deleting a Task.
type DeleteTaskOptions struct {
	ID      string
	OwnerID string
}
