package task

import (
	"context"

	"dayflow/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse runs the single-task inference engine without persisting anything.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Suggest splits a "plan my day" utterance into task candidates awaiting
	// user confirmation. Results are cached; parsing is pure.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)

	// Create parses one line of text and persists the resulting task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// CreateBulk persists the selected candidates from a Suggest round-trip.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)

	// List returns the owner's tasks with optional filters and pagination.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Update applies partial changes to a task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes a task.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ExportCSV renders every task of the owner as a CSV document.
	ExportCSV(ctx context.Context, sc model.Scope) ([]byte, error)
}
