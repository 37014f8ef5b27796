package inmem

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"dayflow/internal/model"
	"dayflow/internal/task/repository"
)

// CreateTask inserts a new task and assigns it an ID and timestamps.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	task := model.Task{
		ID:         uuid.NewString(),
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
	r.tasks[task.ID] = task
	return task, nil
}

// GetOneTask fetches a single task matching all non-empty filters.
func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	if opt.OwnerID != "" && task.OwnerID != opt.OwnerID {
		return model.Task{}, repository.ErrNotFound
	}
	return task, nil
}

// ListTasks returns the filtered tasks in creation order plus the total
// count before pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if !matches(task, opt) {
			continue
		}
		matched = append(matched, task)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	if opt.Offset > 0 {
		if opt.Offset >= total {
			return []model.Task{}, total, nil
		}
		matched = matched[opt.Offset:]
	}
	if opt.Limit > 0 && len(matched) > opt.Limit {
		matched = matched[:opt.Limit]
	}
	return matched, total, nil
}

// UpdateTask applies non-zero fields of opt to an existing task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[opt.ID]
	if !ok || (opt.OwnerID != "" && task.OwnerID != opt.OwnerID) {
		return model.Task{}, repository.ErrNotFound
	}

	if opt.Title != "" {
		task.Title = opt.Title
	}
	if opt.Category != "" {
		task.Category = opt.Category
	}
	if opt.Priority != "" {
		task.Priority = opt.Priority
	}
	if opt.Completed != nil {
		task.Completed = *opt.Completed
	}
	task.UpdatedAt = r.now()

	r.tasks[task.ID] = task
	return task, nil
}

// DeleteTask removes a task.
func (r *implRepository) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[opt.ID]
	if !ok || (opt.OwnerID != "" && task.OwnerID != opt.OwnerID) {
		return repository.ErrNotFound
	}
	delete(r.tasks, task.ID)
	return nil
}

// matches applies every non-zero list filter as an AND condition.
func matches(task model.Task, opt repository.ListTasksOptions) bool {
	if opt.OwnerID != "" && task.OwnerID != opt.OwnerID {
		return false
	}
	if opt.Category != "" && task.Category != opt.Category {
		return false
	}
	if opt.Timeframe != "" && task.Timeframe != opt.Timeframe {
		return false
	}
	if opt.Completed != nil && task.Completed != *opt.Completed {
		return false
	}
	if opt.DueOn != nil {
		if task.DueDate == nil {
			return false
		}
		y1, m1, d1 := task.DueDate.Date()
		y2, m2, d2 := opt.DueOn.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	return true
}
