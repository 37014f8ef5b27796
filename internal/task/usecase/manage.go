package usecase

import (
	"context"
	"errors"
	"strings"

	"dayflow/internal/model"
	"dayflow/internal/task"
	"dayflow/internal/task/repository"
)

// List returns the owner's tasks with optional filters and pagination.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt := repository.ListTasksOptions{
		OwnerID:   sc.OwnerID,
		DueOn:     input.DueOn,
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}

	if input.Category != "" {
		category := model.Category(input.Category)
		if !category.Valid() {
			return task.ListOutput{}, task.ErrInvalidCategory
		}
		opt.Category = category
	}
	if input.Timeframe != "" {
		timeframe := model.Timeframe(input.Timeframe)
		if !timeframe.Valid() {
			return task.ListOutput{}, task.ErrInvalidTimeframe
		}
		opt.Timeframe = timeframe
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	found, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, OwnerID: sc.OwnerID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.DetailOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: found}, nil
}

// Update applies partial changes to a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	opt := repository.UpdateTaskOptions{
		ID:        input.ID,
		OwnerID:   sc.OwnerID,
		Title:     strings.TrimSpace(input.Title),
		Completed: input.Completed,
	}

	if input.Category != "" {
		category := model.Category(input.Category)
		if !category.Valid() {
			return task.UpdateOutput{}, task.ErrInvalidCategory
		}
		opt.Category = category
	}
	if input.Priority != "" {
		priority := model.Priority(input.Priority)
		if !priority.Valid() {
			return task.UpdateOutput{}, task.ErrInvalidPriority
		}
		opt.Priority = priority
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: id, OwnerID: sc.OwnerID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
