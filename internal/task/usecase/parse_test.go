package usecase_test

import (
	"context"
	"errors"
	"testing"

	"dayflow/internal/model"
	"dayflow/internal/task"
)

func TestParse(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)

	t.Run("Empty Input", func(t *testing.T) {
		_, err := uc.Parse(context.Background(), task.ParseInput{Text: "   "})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Full Inference", func(t *testing.T) {
		out, err := uc.Parse(context.Background(), task.ParseInput{Text: "urgent meeting with client tomorrow at 3pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parsed := out.Task
		if parsed.Category != model.CategoryWork {
			t.Errorf("category = %q, want work", parsed.Category)
		}
		if parsed.Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want high", parsed.Priority)
		}
		if parsed.DueDate == nil {
			t.Fatal("expected a due date")
		}
		if got := parsed.DueDate.Day(); got != 2 {
			t.Errorf("due day = %d, want 2 (tomorrow from May 1)", got)
		}
		if parsed.DueTime != "15:00" {
			t.Errorf("due time = %q, want 15:00", parsed.DueTime)
		}
	})
}

func TestSuggest(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)

	t.Run("Empty Input", func(t *testing.T) {
		_, err := uc.Suggest(context.Background(), task.SuggestInput{Text: ""})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Splits Candidates", func(t *testing.T) {
		out, err := uc.Suggest(context.Background(), task.SuggestInput{
			Text: "gym at 7, lunch with Sarah, pay rent",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Candidates) != 3 {
			t.Fatalf("expected 3 candidates, got %d", len(out.Candidates))
		}
		for i, c := range out.Candidates {
			if !c.Selected {
				t.Errorf("candidate %d not pre-selected", i)
			}
		}
	})

	t.Run("Cache Round Trip", func(t *testing.T) {
		first, err := uc.Suggest(context.Background(), task.SuggestInput{Text: "clean the house and study for the exam"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Suggest(context.Background(), task.SuggestInput{Text: "clean the house and study for the exam"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.Candidates) != len(second.Candidates) {
			t.Fatalf("cache returned %d candidates, first call had %d", len(second.Candidates), len(first.Candidates))
		}
		for i := range first.Candidates {
			if first.Candidates[i] != second.Candidates[i] {
				t.Errorf("candidate %d differs between calls: %+v vs %+v", i, first.Candidates[i], second.Candidates[i])
			}
		}
	})
}
