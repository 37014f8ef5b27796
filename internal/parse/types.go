package parse

import (
	"time"

	"dayflow/internal/model"
)

// ParsedTask is the structured inference result for a single sentence.
// It carries no identity or persistence fields; the caller attaches those
// before storage.
type ParsedTask struct {
	Title      string                   `json:"title"`
	Category   model.Category           `json:"category,omitempty"` // empty when no keyword matched
	DueDate    *time.Time               `json:"due_date,omitempty"`
	DueTime    string                   `json:"due_time,omitempty"` // "HH:MM" 24-hour
	Timeframe  model.Timeframe          `json:"timeframe"`
	Recurrence *model.RecurrencePattern `json:"recurrence,omitempty"`
	Priority   model.Priority           `json:"priority"`
}

// TaskCandidate is one suggested task extracted from a multi-task utterance.
// Category and priority always resolve; no date or recurrence extraction is
// performed in that pipeline.
type TaskCandidate struct {
	Title    string         `json:"title"`
	Category model.Category `json:"category"`
	Priority model.Priority `json:"priority"`
	Selected bool           `json:"selected"`
}
