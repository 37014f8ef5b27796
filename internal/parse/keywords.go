package parse

import (
	"regexp"

	"dayflow/internal/model"
)

// categoryKeywords maps each category to its trigger substrings. Categories
// are checked in model.Categories order and keywords in list order; the first
// substring found anywhere in the text wins. This is a coarse, explainable
// heuristic on purpose, not a statistical classifier.
var categoryKeywords = map[model.Category][]string{
	model.CategoryWork: {
		"meeting", "client", "deadline", "project", "report", "email",
		"presentation", "interview", "boss", "office", "work",
	},
	model.CategoryHealth: {
		"gym", "workout", "exercise", "yoga", "doctor", "dentist",
		"medication", "vitamin", "therapy", "checkup", "health",
	},
	model.CategoryPersonal: {
		"clean", "laundry", "organize", "errand", "haircut", "repair",
		"fix the", "chore", "groceries",
	},
	model.CategoryFinance: {
		"pay", "bill", "budget", "bank", "invoice", "tax", "rent",
		"insurance", "subscription", "money",
	},
	model.CategoryLearning: {
		"study", "learn", "course", "practice", "homework", "lecture",
		"tutorial", "read",
	},
	model.CategorySocial: {
		"birthday", "party", "dinner with", "lunch with", "call mom",
		"call dad", "visit", "hang out", "friend", "family",
	},
}

// priorityKeywords maps each priority to its trigger substrings, checked in
// priorityOrder. No match defaults to medium.
var priorityKeywords = map[model.Priority][]string{
	model.PriorityHigh: {
		"urgent", "asap", "important", "critical", "immediately", "right away",
		"high priority",
	},
	model.PriorityMedium: {
		"soon", "this week",
	},
	model.PriorityLow: {
		"whenever", "eventually", "someday", "sometime", "no rush", "no hurry",
		"low priority", "not urgent",
	},
}

var priorityOrder = []model.Priority{
	model.PriorityHigh,
	model.PriorityMedium,
	model.PriorityLow,
}

// Segment classifier tables. The multi-task pipeline trades the substring
// heuristic for word-boundary patterns with a fixed precedence and always
// resolves to a category. The two strategies are intentionally separate:
// callers rely on the "may return nothing" vs "always returns something"
// contract difference.

var segmentCategoryRules = []struct {
	category model.Category
	re       *regexp.Regexp
}{
	{model.CategoryWork, regexp.MustCompile(`(?i)\b(meeting|meet with|email|report|deadline|presentation|client|boss|standup|interview|office|project|work)\b`)},
	{model.CategoryHealth, regexp.MustCompile(`(?i)\b(gym|workout|exercise|jog|jogging|yoga|run|running|doctor|dentist|meds|medication|vitamins?|therapy|checkup)\b`)},
	{model.CategoryFinance, regexp.MustCompile(`(?i)\b(pay|bills?|budget|bank|rent|invoice|tax|taxes|deposit|transfer|insurance|money)\b`)},
	{model.CategorySocial, regexp.MustCompile(`(?i)\b(call|text|mom|dad|grandma|grandpa|friends?|family|birthday|party|dinner|lunch|visit|hang out)\b`)},
	{model.CategoryLearning, regexp.MustCompile(`(?i)\b(study|studying|read|reading|learn|course|class|book|practice|homework)\b`)},
}

// bookingVerbRe suppresses the learning rule when "book" is used as a verb
// ("book a flight"), which would otherwise read as reading material.
var bookingVerbRe = regexp.MustCompile(`(?i)\bbook(ing)?\s+(a|an|the|my|our)\b`)

var segmentHighPriorityRe = regexp.MustCompile(`(?i)\b(urgent|urgently|asap|important|critical|crucial|immediately|right away|high priority|top priority)\b`)

var segmentLowPriorityRe = regexp.MustCompile(`(?i)\b(whenever|eventually|someday|sometime|no rush|no hurry|low priority|not urgent|at some point)\b`)
