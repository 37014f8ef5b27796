package model

import "time"

// Task is a persisted task record owned by a user.
type Task struct {
	ID         string
	OwnerID    string
	Title      string
	Category   Category // empty when no category was inferred or assigned
	Priority   Priority
	Timeframe  Timeframe
	DueDate    *time.Time
	DueTime    string // "HH:MM" 24-hour, empty when the input carried no explicit time
	Recurrence *RecurrencePattern
	Completed  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RecurrencePattern is a structured repetition rule.
type RecurrencePattern struct {
	Type       RecurrenceType `json:"type"`
	Interval   int            `json:"interval"`               // every N units, >= 1
	Days       []int          `json:"days,omitempty"`         // weekday indices, Sunday=0..Saturday=6; weekly only
	DayOfMonth int            `json:"day_of_month,omitempty"` // reserved, not populated by current extraction rules
}

// RecurrenceType classifies a recurrence pattern.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)
