package usecase

import (
	"fmt"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/task"
)

// resolveCategory parses a client-supplied category string. Empty falls back
// to personal, matching the segmenter's always-resolved contract.
func resolveCategory(raw string) (model.Category, error) {
	if raw == "" {
		return model.CategoryPersonal, nil
	}
	category := model.Category(raw)
	if !category.Valid() {
		return "", task.ErrInvalidCategory
	}
	return category, nil
}

// resolvePriority parses a client-supplied priority string, defaulting to medium.
func resolvePriority(raw string) (model.Priority, error) {
	if raw == "" {
		return model.PriorityMedium, nil
	}
	priority := model.Priority(raw)
	if !priority.Valid() {
		return "", task.ErrInvalidPriority
	}
	return priority, nil
}

// combineDateAndClock merges a calendar date with an "HH:MM" clock string,
// keeping the date's location.
func combineDateAndClock(date time.Time, clock string) (time.Time, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, fmt.Errorf("invalid clock string %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("clock %q out of range", clock)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
