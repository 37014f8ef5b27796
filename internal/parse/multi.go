package parse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// segmentSplitRe is the fixed delimiter set for multi-task utterances:
// commas (optionally followed by "and"), standalone " and ", sentence-ending
// periods, newlines, semicolons, and the word "then".
var segmentSplitRe = regexp.MustCompile(`(?i),\s*(?:and\s+)?|\s+and\s+|\.\s+|\r?\n|;|\bthen\s+`)

// ParseTasks splits a compound utterance into independent task candidates.
// Each surviving segment gets category and priority detection against the
// uncleaned segment text — verb context like "need to call" matters for the
// word-boundary patterns — while the cleaned text becomes the title and the
// deduplication key. No date or recurrence extraction happens here; this
// pipeline exists for rapid bulk entry, not precise scheduling.
func (p *Parser) ParseTasks(text string) []TaskCandidate {
	segments := segmentSplitRe.Split(text, -1)

	candidates := make([]TaskCandidate, 0, len(segments))
	kept := make([]string, 0, len(segments))

	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if utf8.RuneCountInString(segment) <= 2 {
			continue
		}

		title := CleanSegment(segment)
		if utf8.RuneCountInString(title) < 3 {
			continue
		}
		if isDuplicate(kept, title) {
			continue
		}
		kept = append(kept, strings.ToLower(title))

		candidates = append(candidates, TaskCandidate{
			Title:    title,
			Category: DetectSegmentCategory(segment),
			Priority: DetectSegmentPriority(segment),
			Selected: true,
		})
	}

	return candidates
}

// isDuplicate reports whether title repeats an already-kept candidate.
// The check is case-insensitive and collapses phrase containment both ways,
// so "clean" followed by "clean the house" keeps only the first occurrence.
// Containment is word-aligned: "read" does not swallow "reading list".
func isDuplicate(kept []string, title string) bool {
	lower := strings.ToLower(title)
	for _, existing := range kept {
		if containsPhrase(existing, lower) || containsPhrase(lower, existing) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase occurs in s on word boundaries.
func containsPhrase(s, phrase string) bool {
	for start := 0; ; {
		i := strings.Index(s[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if boundaryBefore(s, i) && boundaryAfter(s, end) {
			return true
		}
		start = i + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i == len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
