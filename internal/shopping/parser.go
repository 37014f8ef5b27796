package shopping

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// leadingQuantityRe matches "2 lbs chicken", "1.5 l milk", "3 apples".
var leadingQuantityRe = regexp.MustCompile(
	`(?i)^(\d+(?:\.\d+)?)\s*(lbs?|kg|g|oz|l|ml|dozen|packs?|bottles?|cans?|boxes?|bags?|rolls?)?\s+(?:of\s+)?(.+)$`)

// trailingQuantityRe matches "milk x2" and "milk x 2".
var trailingQuantityRe = regexp.MustCompile(`(?i)^(.+?)\s*x\s*(\d+)$`)

// ParseItem converts one free-text shopping entry into a structured item:
// quantity and unit are lifted out of the name, and the remainder is
// classified into an aisle. Total over all inputs; unknown entries come back
// as quantity 1, category pantry.
func ParseItem(text string) ParsedItem {
	item := ParsedItem{Quantity: 1}
	name := strings.TrimSpace(text)

	if m := leadingQuantityRe.FindStringSubmatch(name); m != nil {
		if qty, err := strconv.ParseFloat(m[1], 64); err == nil && qty > 0 {
			item.Quantity = qty
			item.Unit = strings.ToLower(m[2])
			name = strings.TrimSpace(m[3])
		}
	} else if m := trailingQuantityRe.FindStringSubmatch(name); m != nil {
		if qty, err := strconv.ParseFloat(m[2], 64); err == nil && qty > 0 {
			item.Quantity = qty
			name = strings.TrimSpace(m[1])
		}
	}

	item.Name = capitalize(name)
	item.Category = detectCategory(name)
	return item
}

// ParseList splits a free-text list on commas, newlines and " and ", parsing
// each surviving entry. Entries shorter than 2 characters are noise.
func ParseList(text string) []ParsedItem {
	parts := listSplitRe.Split(text, -1)
	items := make([]ParsedItem, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) < 2 {
			continue
		}
		items = append(items, ParseItem(part))
	}
	return items
}

var listSplitRe = regexp.MustCompile(`(?i),\s*(?:and\s+)?|\s+and\s+|\r?\n|;`)

// detectCategory maps an item name to an aisle via case-insensitive substring
// membership, first match wins, defaulting to pantry.
func detectCategory(name string) Category {
	lower := strings.ToLower(name)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return CategoryPantry
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
