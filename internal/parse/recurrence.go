package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dayflow/internal/model"
)

// weekdayListRe matches an explicit list of weekday names after "every",
// allowing comma or "and" separated lists: "every monday and wednesday".
var weekdayListRe = regexp.MustCompile(
	`(?i)\bevery\s+((?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)s?` +
		`(?:\s*(?:,|and)\s*(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)s?)*)`)

var weekdayNameRe = regexp.MustCompile(`(?i)sunday|monday|tuesday|wednesday|thursday|friday|saturday`)

var weekdayToIndex = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// intervalRules is the ordered pattern table for interval-style recurrence.
// First match wins.
// TODO: confirm whether "every N months" should join the table; daily and
// weekly have numeric-interval rules but monthly does not.
var intervalRules = []struct {
	re       *regexp.Regexp
	typ      model.RecurrenceType
	interval bool // true when the first submatch carries the interval
}{
	{regexp.MustCompile(`(?i)\bevery day\b|\bdaily\b`), model.RecurrenceDaily, false},
	{regexp.MustCompile(`(?i)\bevery week\b|\bweekly\b`), model.RecurrenceWeekly, false},
	{regexp.MustCompile(`(?i)\bevery month\b|\bmonthly\b`), model.RecurrenceMonthly, false},
	{regexp.MustCompile(`(?i)\bevery (\d+) days\b`), model.RecurrenceDaily, true},
	{regexp.MustCompile(`(?i)\bevery (\d+) weeks\b`), model.RecurrenceWeekly, true},
}

// DetectRecurrence finds a repetition phrase in text and encodes it as a
// structured pattern. An explicit weekday list after "every" takes precedence
// over the interval table. Returns nil when no repetition phrase is present.
func DetectRecurrence(text string) *model.RecurrencePattern {
	if m := weekdayListRe.FindStringSubmatch(text); m != nil {
		names := weekdayNameRe.FindAllString(strings.ToLower(m[1]), -1)
		if len(names) > 0 {
			days := make([]int, 0, len(names))
			seen := make(map[int]bool, len(names))
			for _, name := range names {
				idx := weekdayToIndex[name]
				if !seen[idx] {
					seen[idx] = true
					days = append(days, idx)
				}
			}
			return &model.RecurrencePattern{
				Type:     model.RecurrenceWeekly,
				Interval: 1,
				Days:     days,
			}
		}
	}

	for _, rule := range intervalRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		interval := 1
		if rule.interval {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 {
				continue
			}
			interval = n
		}
		return &model.RecurrencePattern{Type: rule.typ, Interval: interval}
	}

	return nil
}

// FormatRecurrence renders a human-readable summary of a pattern, e.g.
// "Every Mon, Wed" or "Every 3 weeks". An explicit weekday set takes
// precedence over the interval. Unknown types render as "".
func FormatRecurrence(p model.RecurrencePattern) string {
	if len(p.Days) > 0 {
		names := make([]string, 0, len(p.Days))
		for _, day := range p.Days {
			if day >= 0 && day <= 6 {
				names = append(names, time.Weekday(day).String()[:3])
			}
		}
		if len(names) > 0 {
			return "Every " + strings.Join(names, ", ")
		}
	}

	switch p.Type {
	case model.RecurrenceDaily:
		if p.Interval <= 1 {
			return "Daily"
		}
		return fmt.Sprintf("Every %d days", p.Interval)
	case model.RecurrenceWeekly:
		if p.Interval <= 1 {
			return "Weekly"
		}
		return fmt.Sprintf("Every %d weeks", p.Interval)
	case model.RecurrenceMonthly:
		if p.Interval <= 1 {
			return "Monthly"
		}
		return fmt.Sprintf("Every %d months", p.Interval)
	}
	return ""
}
