package parse

import (
	"strings"
)

// ParseTask converts one line of text into a structured task. Every component
// runs against the original unmodified input, so classifiers never see each
// other's edits. The function is total: a fully unparseable string still
// yields a task with a non-empty title, timeframe=once and priority=medium;
// blank input gets a placeholder title.
func (p *Parser) ParseTask(text string) ParsedTask {
	now := p.now()

	recurrence := DetectRecurrence(text)

	task := ParsedTask{
		Category:   DetectCategory(text),
		Priority:   DetectPriority(text),
		Recurrence: recurrence,
	}

	if res := p.dates.Extract(text, now); res != nil {
		date := res.Date
		task.DueDate = &date
		task.DueTime = res.ClockString()
	}

	task.Timeframe = InferTimeframe(text, recurrence != nil, task.DueDate, now)

	task.Title = CleanTitle(text)
	if task.Title == "" {
		task.Title = strings.TrimSpace(text)
	}
	if task.Title == "" {
		task.Title = "Untitled task"
	}

	return task
}
