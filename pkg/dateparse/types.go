package dateparse

import (
	"fmt"
	"time"
)

// Result holds the first temporal mention found in a piece of text.
type Result struct {
	Date    time.Time // start of day in the extractor's timezone
	HasTime bool      // true only when an explicit hour was present
	Hour    int
	Minute  int
}

// ClockString returns the time-of-day as "HH:MM", or "" when no explicit
// hour was parsed.
func (r Result) ClockString() string {
	if !r.HasTime {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}
