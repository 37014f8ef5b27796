package usecase

import (
	"context"
	"strings"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/task"
	"dayflow/internal/task/repository"
	"dayflow/pkg/gcalendar"
)

// Create parses one line of text and persists the resulting task. Calendar
// export is best-effort: a failed calendar call is logged, never returned.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	parsed := uc.parser.ParseTask(text)

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID:    sc.OwnerID,
		Title:      parsed.Title,
		Category:   parsed.Category,
		Priority:   parsed.Priority,
		Timeframe:  parsed.Timeframe,
		DueDate:    parsed.DueDate,
		DueTime:    parsed.DueTime,
		Recurrence: parsed.Recurrence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	output := task.CreateOutput{Task: created}
	if link := uc.exportToCalendar(ctx, created); link != "" {
		output.CalendarLink = link
	}

	uc.l.Infof(ctx, "created task %s (%s/%s)", created.ID, created.Timeframe, created.Priority)
	return output, nil
}

// CreateBulk persists the selected candidates from a Suggest round-trip.
// Candidates are lightweight by design: no date or recurrence fields exist
// in that pipeline, so every bulk-created task lands in the once bucket.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	var output task.CreateBulkOutput

	selected := make([]task.CandidateInput, 0, len(input.Candidates))
	for _, candidate := range input.Candidates {
		if !candidate.Selected || strings.TrimSpace(candidate.Title) == "" {
			output.Skipped++
			continue
		}
		selected = append(selected, candidate)
	}
	if len(selected) == 0 {
		return task.CreateBulkOutput{}, task.ErrNoCandidatesSelected
	}

	for _, candidate := range selected {
		category, err := resolveCategory(candidate.Category)
		if err != nil {
			return task.CreateBulkOutput{}, err
		}
		priority, err := resolvePriority(candidate.Priority)
		if err != nil {
			return task.CreateBulkOutput{}, err
		}

		created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			OwnerID:   sc.OwnerID,
			Title:     strings.TrimSpace(candidate.Title),
			Category:  category,
			Priority:  priority,
			Timeframe: model.TimeframeOnce,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateBulk CreateTask: %v", err)
			return task.CreateBulkOutput{}, err
		}
		output.Tasks = append(output.Tasks, created)
	}

	uc.l.Infof(ctx, "bulk-created %d tasks, skipped %d", len(output.Tasks), output.Skipped)
	return output, nil
}

// exportToCalendar pushes a due-dated task to Google Calendar and returns the
// event link, or "" when export is disabled, not applicable, or failed.
func (uc *implUseCase) exportToCalendar(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	req := gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    t.Title,
		StartTime:  *t.DueDate,
		Timezone:   uc.timezone,
		AllDay:     true,
	}
	if t.DueTime != "" {
		start, err := combineDateAndClock(*t.DueDate, t.DueTime)
		if err == nil {
			req.AllDay = false
			req.StartTime = start
			req.EndTime = start.Add(time.Hour)
		}
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "calendar export failed for task %s: %v", t.ID, err)
		return ""
	}
	return event.HtmlLink
}
