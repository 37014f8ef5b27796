package usecase_test

import (
	"context"
	"errors"
	"testing"

	"dayflow/internal/model"
	"dayflow/internal/task"
)

func seedRepo(t *testing.T) (*mockRepo, task.UseCase) {
	t.Helper()
	repo := &mockRepo{}
	uc := newTestUseCase(t, repo, nil)

	sc := model.Scope{OwnerID: "u1"}
	for _, text := range []string{
		"finish the project report by Friday",
		"gym session tomorrow at 7am",
		"pay rent",
	} {
		if _, err := uc.Create(context.Background(), sc, task.CreateInput{Text: text}); err != nil {
			t.Fatalf("seed create %q: %v", text, err)
		}
	}
	return repo, uc
}

func TestList(t *testing.T) {
	sc := model.Scope{OwnerID: "u1"}

	t.Run("All Tasks", func(t *testing.T) {
		_, uc := seedRepo(t)
		out, err := uc.List(context.Background(), sc, task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 3 {
			t.Errorf("total = %d, want 3", out.Total)
		}
	})

	t.Run("Category Filter", func(t *testing.T) {
		_, uc := seedRepo(t)
		out, err := uc.List(context.Background(), sc, task.ListInput{Category: "work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, got := range out.Tasks {
			if got.Category != model.CategoryWork {
				t.Errorf("task %q category = %q, want work", got.Title, got.Category)
			}
		}
	})

	t.Run("Invalid Category", func(t *testing.T) {
		_, uc := seedRepo(t)
		_, err := uc.List(context.Background(), sc, task.ListInput{Category: "chores"})
		if !errors.Is(err, task.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("Invalid Timeframe", func(t *testing.T) {
		_, uc := seedRepo(t)
		_, err := uc.List(context.Background(), sc, task.ListInput{Timeframe: "yearly"})
		if !errors.Is(err, task.ErrInvalidTimeframe) {
			t.Errorf("expected ErrInvalidTimeframe, got %v", err)
		}
	})

	t.Run("Owner Isolation", func(t *testing.T) {
		_, uc := seedRepo(t)
		out, err := uc.List(context.Background(), model.Scope{OwnerID: "u2"}, task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 0 {
			t.Errorf("total = %d for another owner, want 0", out.Total)
		}
	})
}

func TestDetail(t *testing.T) {
	sc := model.Scope{OwnerID: "u1"}
	repo, uc := seedRepo(t)

	t.Run("Found", func(t *testing.T) {
		out, err := uc.Detail(context.Background(), sc, repo.tasks[0].ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID != repo.tasks[0].ID {
			t.Errorf("id = %q, want %q", out.Task.ID, repo.tasks[0].ID)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), sc, "missing-id")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Wrong Owner", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), model.Scope{OwnerID: "u2"}, repo.tasks[0].ID)
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound for another owner, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	sc := model.Scope{OwnerID: "u1"}

	t.Run("Partial Update", func(t *testing.T) {
		repo, uc := seedRepo(t)
		completed := true
		out, err := uc.Update(context.Background(), sc, task.UpdateInput{
			ID:        repo.tasks[0].ID,
			Priority:  "high",
			Completed: &completed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want high", out.Task.Priority)
		}
		if !out.Task.Completed {
			t.Error("completed flag not applied")
		}
		if out.Task.Title != repo.tasks[0].Title {
			t.Errorf("title changed unexpectedly to %q", out.Task.Title)
		}
	})

	t.Run("Invalid Priority", func(t *testing.T) {
		repo, uc := seedRepo(t)
		_, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: repo.tasks[0].ID, Priority: "extreme"})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		_, uc := seedRepo(t)
		_, err := uc.Update(context.Background(), sc, task.UpdateInput{ID: "missing-id", Title: "X Y Z"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	sc := model.Scope{OwnerID: "u1"}

	t.Run("Removes Task", func(t *testing.T) {
		repo, uc := seedRepo(t)
		id := repo.tasks[1].ID
		if err := uc.Delete(context.Background(), sc, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Detail(context.Background(), sc, id); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("task still retrievable after delete: %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		_, uc := seedRepo(t)
		if err := uc.Delete(context.Background(), sc, "missing-id"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
