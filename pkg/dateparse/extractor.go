package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extractor finds temporal expressions inside free text and resolves them
// against an explicit base time. The base time is always passed in by the
// caller, so extraction is deterministic and testable.
type Extractor struct {
	location *time.Location
}

// NewExtractor creates an extractor for the given IANA timezone string,
// e.g. "Europe/Madrid".
func NewExtractor(timezone string) (*Extractor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Extractor{location: loc}, nil
}

const weekdayAlt = `sunday|monday|tuesday|wednesday|thursday|friday|saturday`

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var monthIndex = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// dateRule resolves one date expression. Rules are scanned over the whole
// text and the earliest-positioned match wins; declaration order breaks ties.
type dateRule struct {
	re      *regexp.Regexp
	resolve func(m []string, base time.Time, loc *time.Location) (time.Time, bool)
}

var dateRules = []dateRule{
	{
		re: regexp.MustCompile(`(?i)\bday after tomorrow\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			return base.AddDate(0, 0, 2), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(today|tonight)\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			return base, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\btomorrow\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			return base.AddDate(0, 0, 1), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext (` + weekdayAlt + `)\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			return nextWeekday(base, weekdayIndex[strings.ToLower(m[1])], true), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:this )?(` + weekdayAlt + `)\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			return nextWeekday(base, weekdayIndex[strings.ToLower(m[1])], false), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext week\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			return base.AddDate(0, 0, 7), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext month\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			return base.AddDate(0, 1, 0), true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bin (\d+) (day|days|week|weeks|month|months)\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			amount, _ := strconv.Atoi(m[1])
			switch {
			case strings.HasPrefix(strings.ToLower(m[2]), "day"):
				return base.AddDate(0, 0, amount), true
			case strings.HasPrefix(strings.ToLower(m[2]), "week"):
				return base.AddDate(0, 0, amount*7), true
			default:
				return base.AddDate(0, amount, 0), true
			}
		},
	},
	{
		// Slash dates: M/D or M/D/YYYY. Year-less dates in the past roll to next year.
		re: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			if month < 1 || month > 12 || day < 1 || day > 31 {
				return time.Time{}, false
			}
			year := base.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
				if year < 100 {
					year += 2000
				}
			}
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
			if m[3] == "" && d.Before(startOfDay(base, loc)) {
				d = d.AddDate(1, 0, 0)
			}
			return d, true
		},
	},
	{
		// Month-name dates: "june 5", "Jan 21st".
		re: regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec)\.? (\d{1,2})(?:st|nd|rd|th)?\b`),
		resolve: func(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
			day, _ := strconv.Atoi(m[2])
			if day < 1 || day > 31 {
				return time.Time{}, false
			}
			d := time.Date(base.Year(), monthIndex[strings.ToLower(m[1])], day, 0, 0, 0, 0, loc)
			if d.Before(startOfDay(base, loc)) {
				d = d.AddDate(1, 0, 0)
			}
			return d, true
		},
	},
}

// timeRule resolves one time-of-day expression.
type timeRule struct {
	re      *regexp.Regexp
	resolve func(m []string) (hour, minute int, ok bool)
}

var timeRules = []timeRule{
	{
		// The trailing guard keeps the bare-hour form from eating the month
		// of a slash date ("by 12/25" is a date, not a 12:00 clock).
		re: regexp.MustCompile(`(?i)\b(?:at|by|before|after)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b(?:[^/\d]|$)`),
		resolve: func(m []string) (int, int, bool) {
			return resolveClock(m[1], m[2], m[3])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`),
		resolve: func(m []string) (int, int, bool) {
			return resolveClock(m[1], m[2], m[3])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`),
		resolve: func(m []string) (int, int, bool) {
			return resolveClock(m[1], "", m[2])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnoon\b`),
		resolve: func(m []string) (int, int, bool) { return 12, 0, true },
	},
	{
		re: regexp.MustCompile(`(?i)\bmidnight\b`),
		resolve: func(m []string) (int, int, bool) { return 0, 0, true },
	},
}

// Extract finds the earliest temporal mention in text, resolved against base.
// It returns nil when the text carries no recognizable date or time; absence
// is not an error. A time-only mention resolves to the base day.
func (e *Extractor) Extract(text string, base time.Time) *Result {
	base = base.In(e.location)

	var (
		date      time.Time
		haveDate  bool
		datePos   = -1
		hour, min int
		haveTime  bool
		timePos   = -1
	)

	for _, rule := range dateRules {
		loc := rule.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		if datePos != -1 && loc[0] >= datePos {
			continue
		}
		m := matchStrings(text, loc)
		if d, ok := rule.resolve(m, base, e.location); ok {
			date = startOfDay(d, e.location)
			haveDate = true
			datePos = loc[0]
		}
	}

	for _, rule := range timeRules {
		loc := rule.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		if timePos != -1 && loc[0] >= timePos {
			continue
		}
		m := matchStrings(text, loc)
		if h, mm, ok := rule.resolve(m); ok {
			hour, min = h, mm
			haveTime = true
			timePos = loc[0]
		}
	}

	if !haveDate && !haveTime {
		return nil
	}
	if !haveDate {
		date = startOfDay(base, e.location)
	}

	return &Result{Date: date, HasTime: haveTime, Hour: hour, Minute: min}
}

// resolveClock converts submatch strings into a 24-hour clock value.
func resolveClock(hourStr, minStr, meridiem string) (int, int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return 0, 0, false
	}
	minute := 0
	if minStr != "" {
		minute, err = strconv.Atoi(minStr)
		if err != nil || minute > 59 {
			return 0, 0, false
		}
	}
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour > 12 {
			return 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

// matchStrings converts FindStringSubmatchIndex output into submatch strings.
func matchStrings(text string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] >= 0 {
			m[i/2] = text[loc[i]:loc[i+1]]
		}
	}
	return m
}

// nextWeekday returns the upcoming occurrence of target after base.
// With strict set ("next monday"), a match on the base day advances a week;
// otherwise ("this monday", bare weekday) the base day counts.
func nextWeekday(base time.Time, target time.Weekday, strict bool) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (strict && daysUntil == 0) {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// startOfDay returns midnight at the start of the given day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
