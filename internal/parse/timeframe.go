package parse

import (
	"regexp"
	"strings"
	"time"

	"dayflow/internal/model"
)

// everyWeekdayRe matches "every monday", "every tuesdays", etc. — a weekly
// signal even though the word "weekly" never appears.
var everyWeekdayRe = regexp.MustCompile(`(?i)\bevery\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)s?\b`)

// InferTimeframe derives the coarse scheduling bucket for a task. With a
// recurrence present the raw text is scanned again (daily, then weekly, then
// monthly — first match wins). Without one, a due date is bucketed by its
// day-distance from now. Everything else is once.
func InferTimeframe(text string, hasRecurrence bool, dueDate *time.Time, now time.Time) model.Timeframe {
	if hasRecurrence {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "daily") || strings.Contains(lower, "every day"):
			return model.TimeframeDaily
		case strings.Contains(lower, "weekly") || strings.Contains(lower, "every week") || everyWeekdayRe.MatchString(lower):
			return model.TimeframeWeekly
		case strings.Contains(lower, "monthly") || strings.Contains(lower, "every month"):
			return model.TimeframeMonthly
		}
		return model.TimeframeOnce
	}

	if dueDate != nil {
		days := dueDate.Sub(now).Hours() / 24
		switch {
		case days <= 1:
			return model.TimeframeDaily
		case days <= 7:
			return model.TimeframeWeekly
		case days <= 30:
			return model.TimeframeMonthly
		}
	}

	return model.TimeframeOnce
}
