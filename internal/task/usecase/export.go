package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/parse"
	"dayflow/internal/task/repository"
)

var csvHeader = []string{
	"id", "title", "category", "priority", "timeframe",
	"due_date", "due_time", "recurrence", "completed", "created_at",
}

// ExportCSV renders every task of the owner as a CSV document.
func (uc *implUseCase) ExportCSV(ctx context.Context, sc model.Scope) ([]byte, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: sc.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportCSV ListTasks: %v", err)
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if err := w.Write(csvRecord(t)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "exported %d tasks to csv", len(tasks))
	return buf.Bytes(), nil
}

func csvRecord(t model.Task) []string {
	dueDate := ""
	if t.DueDate != nil {
		dueDate = t.DueDate.Format(time.DateOnly)
	}
	recurrence := ""
	if t.Recurrence != nil {
		recurrence = parse.FormatRecurrence(*t.Recurrence)
	}
	return []string{
		t.ID,
		t.Title,
		string(t.Category),
		string(t.Priority),
		string(t.Timeframe),
		dueDate,
		t.DueTime,
		recurrence,
		strconv.FormatBool(t.Completed),
		t.CreatedAt.Format(time.RFC3339),
	}
}
