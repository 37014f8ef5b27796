package usecase

import (
	"context"
	"strings"

	"dayflow/internal/task"
)

// Parse runs the single-task inference engine without persisting anything.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	return task.ParseOutput{Task: uc.parser.ParseTask(text)}, nil
}

// Suggest splits a multi-task utterance into candidates. Results are served
// from the LRU cache when the same text was recently suggested.
func (uc *implUseCase) Suggest(ctx context.Context, input task.SuggestInput) (task.SuggestOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.SuggestOutput{}, task.ErrEmptyInput
	}

	if cached, ok := uc.suggestions.Get(text); ok {
		uc.l.Debugf(ctx, "suggest cache hit for %d chars", len(text))
		return task.SuggestOutput{Candidates: cached}, nil
	}

	candidates := uc.parser.ParseTasks(text)
	uc.suggestions.Add(text, candidates)

	uc.l.Infof(ctx, "suggested %d candidates from %d chars", len(candidates), len(text))
	return task.SuggestOutput{Candidates: candidates}, nil
}
