package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/parse"
	"dayflow/internal/task"
	"dayflow/internal/task/repository"
	"dayflow/internal/task/usecase"
	"dayflow/pkg/dateparse"
	"dayflow/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	fail  bool
	tasks []model.Task
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("db error")
	}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t := model.Task{
		ID:         fmt.Sprintf("task-%d", len(m.tasks)+1),
		OwnerID:    opt.OwnerID,
		Title:      opt.Title,
		Category:   opt.Category,
		Priority:   opt.Priority,
		Timeframe:  opt.Timeframe,
		DueDate:    opt.DueDate,
		DueTime:    opt.DueTime,
		Recurrence: opt.Recurrence,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("db error")
	}
	for _, t := range m.tasks {
		if t.ID == opt.ID && (opt.OwnerID == "" || t.OwnerID == opt.OwnerID) {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.fail {
		return nil, 0, errors.New("db error")
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.OwnerID != "" && t.OwnerID != opt.OwnerID {
			continue
		}
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("db error")
	}
	for i, t := range m.tasks {
		if t.ID != opt.ID || (opt.OwnerID != "" && t.OwnerID != opt.OwnerID) {
			continue
		}
		if opt.Title != "" {
			t.Title = opt.Title
		}
		if opt.Category != "" {
			t.Category = opt.Category
		}
		if opt.Priority != "" {
			t.Priority = opt.Priority
		}
		if opt.Completed != nil {
			t.Completed = *opt.Completed
		}
		m.tasks[i] = t
		return t, nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	if m.fail {
		return errors.New("db error")
	}
	for i, t := range m.tasks {
		if t.ID == opt.ID && (opt.OwnerID == "" || t.OwnerID == opt.OwnerID) {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockCalendarClient struct {
	fail   bool
	calls  int
	lastEv gcalendar.CreateEventRequest
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	m.lastEv = req
	if m.fail {
		return nil, errors.New("cal error")
	}
	return &gcalendar.Event{HtmlLink: "http://cal.link/ev1"}, nil
}

// fixedNow anchors every relative-date test to Wed May 1 2024, 10:00 UTC.
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestParser(t *testing.T) *parse.Parser {
	t.Helper()
	extractor, err := dateparse.NewExtractor("UTC")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return parse.New(extractor, parse.WithClock(func() time.Time { return fixedNow }))
}

func newTestUseCase(t *testing.T, repo repository.Repository, cal usecase.CalendarClient) task.UseCase {
	t.Helper()
	return usecase.New(&mockLogger{}, newTestParser(t), repo, cal, usecase.Config{
		CalendarID: "primary",
		Timezone:   "UTC",
	})
}

// hasTitle reports whether any task in the slice carries the title.
func hasTitle(tasks []model.Task, title string) bool {
	for _, t := range tasks {
		if strings.EqualFold(t.Title, title) {
			return true
		}
	}
	return false
}
