package parse_test

import (
	"testing"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/parse"
)

func TestInferTimeframe(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
		return &d
	}

	tests := []struct {
		name          string
		text          string
		hasRecurrence bool
		dueDate       *time.Time
		want          model.Timeframe
	}{
		{"Recurring daily", "meditate every day", true, nil, model.TimeframeDaily},
		{"Recurring daily keyword", "take vitamins daily", true, nil, model.TimeframeDaily},
		{"Recurring weekly", "review budget weekly", true, nil, model.TimeframeWeekly},
		{"Recurring weekday is weekly", "gym every monday", true, nil, model.TimeframeWeekly},
		{"Recurring monthly", "pay rent every month", true, nil, model.TimeframeMonthly},
		{"Daily wins over weekly in scan order", "daily review every week", true, nil, model.TimeframeDaily},
		{"Recurring without bucket keyword", "change filter every 3 days", true, nil, model.TimeframeOnce},
		{"Due tomorrow", "buy milk tomorrow", false, day(1), model.TimeframeDaily},
		{"Due in five days", "renew passport", false, day(5), model.TimeframeWeekly},
		{"Due in three weeks", "file taxes", false, day(21), model.TimeframeMonthly},
		{"Due far out", "plan summer trip", false, day(90), model.TimeframeOnce},
		{"No signals", "wash the car", false, nil, model.TimeframeOnce},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse.InferTimeframe(tt.text, tt.hasRecurrence, tt.dueDate, now)
			if got != tt.want {
				t.Errorf("InferTimeframe(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
