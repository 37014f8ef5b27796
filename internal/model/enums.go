package model

// Category is the closed set of life domains a task can belong to.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryHealth   Category = "health"
	CategoryPersonal Category = "personal"
	CategoryFinance  Category = "finance"
	CategoryLearning Category = "learning"
	CategorySocial   Category = "social"
)

// Categories lists every category in declaration order. Classifiers iterate
// this slice, so the order is part of the classification contract.
var Categories = []Category{
	CategoryWork,
	CategoryHealth,
	CategoryPersonal,
	CategoryFinance,
	CategoryLearning,
	CategorySocial,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryHealth, CategoryPersonal, CategoryFinance, CategoryLearning, CategorySocial:
		return true
	}
	return false
}

// DisplayName returns the human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryHealth:
		return "Health"
	case CategoryPersonal:
		return "Personal"
	case CategoryFinance:
		return "Finance"
	case CategoryLearning:
		return "Learning"
	case CategorySocial:
		return "Social"
	}
	return string(c)
}

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Timeframe is the coarse scheduling bucket used for grouping tasks.
// It is distinct from RecurrencePattern, which carries the precise rule.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeOnce    Timeframe = "once"
)

// Valid reports whether t is a known timeframe.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeOnce:
		return true
	}
	return false
}
