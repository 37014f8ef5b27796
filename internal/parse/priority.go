package parse

import (
	"strings"

	"dayflow/internal/model"
)

// DetectPriority maps free text to a priority via case-insensitive substring
// membership, first match wins. No match defaults to medium.
func DetectPriority(text string) model.Priority {
	lower := strings.ToLower(text)
	for _, priority := range priorityOrder {
		for _, keyword := range priorityKeywords[priority] {
			if strings.Contains(lower, keyword) {
				return priority
			}
		}
	}
	return model.PriorityMedium
}

// DetectSegmentPriority classifies one segment of a multi-task utterance
// using word-boundary patterns over a wider trigger set. Defaults to medium.
func DetectSegmentPriority(text string) model.Priority {
	if segmentHighPriorityRe.MatchString(text) {
		return model.PriorityHigh
	}
	if segmentLowPriorityRe.MatchString(text) {
		return model.PriorityLow
	}
	return model.PriorityMedium
}
