package parse

import (
	"strings"

	"dayflow/internal/model"
)

// DetectCategory maps free text to a category via case-insensitive substring
// membership, first match wins. It returns the empty category when nothing
// matches so the caller can keep its existing or default value.
func DetectCategory(text string) model.Category {
	lower := strings.ToLower(text)
	for _, category := range model.Categories {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return ""
}

// DetectSegmentCategory classifies one segment of a multi-task utterance.
// Unlike DetectCategory it uses word-boundary patterns with a fixed
// precedence and always resolves, defaulting to personal.
func DetectSegmentCategory(text string) model.Category {
	for _, rule := range segmentCategoryRules {
		if !rule.re.MatchString(text) {
			continue
		}
		if rule.category == model.CategoryLearning && bookingVerbRe.MatchString(text) {
			continue
		}
		return rule.category
	}
	return model.CategoryPersonal
}
