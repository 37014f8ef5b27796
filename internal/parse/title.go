package parse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const titleWeekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

// titleStripRules is the ordered list of phrases removed from a raw input to
// leave a human-readable title: clock times, relative-day references,
// recurrence phrases, urgency keywords, and slash dates.
var titleStripRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(at|on|by|before|after)\s+\d{1,2}(:\d{2})?\s*(am|pm)?\b`),
	regexp.MustCompile(`(?i)\b(at|by)\s+(noon|midnight)\b`),
	regexp.MustCompile(`(?i)\b(on|by|before|after)\s+(` + titleWeekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)\b(today|tomorrow|tonight)\b`),
	regexp.MustCompile(`(?i)\bthis\s+(week|month|year|weekend|morning|afternoon|evening|` + titleWeekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)\bnext\s+(week|month|year|weekend|` + titleWeekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)\bevery\s+(day|week|month|\d+\s+(days|weeks|months)|(` + titleWeekdayAlt + `)s?(\s*(,|and)\s*(` + titleWeekdayAlt + `)s?)*)\b`),
	regexp.MustCompile(`(?i)\b(daily|weekly|monthly)\b`),
	regexp.MustCompile(`(?i)\bin\s+\d+\s+(days?|weeks?|months?)\b`),
	regexp.MustCompile(`(?i)\b(urgent(ly)?|important|asap)\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}(/\d{2,4})?\b`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// segmentFillers are the leading filler phrases stripped from multi-task
// segments, longest first so "i need to" wins over "need to".
var segmentFillers = []string{
	"don't forget to",
	"dont forget to",
	"remember to",
	"make sure to",
	"i need to",
	"i have to",
	"i want to",
	"i should",
	"i would like to",
	"i gotta",
	"i must",
	"i will",
	"i'll",
	"need to",
	"have to",
	"gotta",
}

// CleanTitle strips recognized date, recurrence, and urgency phrases from the
// raw text, collapses whitespace, and capitalizes the first character.
// Stripping runs to a fixpoint so the result is idempotent: phrases exposed
// by an earlier removal are removed too. May return an empty string; the
// single-task parser falls back to the raw input in that case.
func CleanTitle(text string) string {
	cleaned := text
	for {
		previous := cleaned
		for _, re := range titleStripRules {
			cleaned = re.ReplaceAllString(cleaned, " ")
		}
		cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
		cleaned = trimEdges(cleaned)
		if cleaned == previous {
			break
		}
	}
	return capitalize(cleaned)
}

// CleanSegment strips leading filler phrases and edge punctuation from one
// segment of a multi-task utterance, then capitalizes. It deliberately does
// not strip dates or recurrence; segments are not date-parsed.
func CleanSegment(text string) string {
	cleaned := strings.TrimSpace(text)
	for {
		previous := cleaned
		lower := strings.ToLower(cleaned)
		for _, filler := range segmentFillers {
			if strings.HasPrefix(lower, filler) {
				cleaned = strings.TrimSpace(cleaned[len(filler):])
				lower = strings.ToLower(cleaned)
			}
		}
		cleaned = trimEdges(cleaned)
		if cleaned == previous {
			break
		}
	}
	return capitalize(cleaned)
}

// trimEdges removes leading/trailing whitespace and stray punctuation left
// behind by phrase removal.
func trimEdges(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '.' || r == ';' || r == ':' || r == '-'
	})
}

// capitalize upper-cases the first rune.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
