package http

import (
	"time"

	"dayflow/internal/model"
	"dayflow/internal/parse"
	"dayflow/internal/task"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Text: r.Text}
}

// ---

type suggestReq struct {
	Text string `json:"text" binding:"required,max=5000"`
}

func (r suggestReq) toInput() task.SuggestInput {
	return task.SuggestInput{Text: r.Text}
}

// ---

type createReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{Text: r.Text}
}

// ---

type candidateReq struct {
	Title    string `json:"title"    binding:"required,max=500"`
	Category string `json:"category" binding:"omitempty,oneof=work health personal finance learning social"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Selected bool   `json:"selected"`
}

type createBulkReq struct {
	Candidates []candidateReq `json:"candidates" binding:"required,min=1,dive"`
}

func (r createBulkReq) toInput() task.CreateBulkInput {
	candidates := make([]task.CandidateInput, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = task.CandidateInput{
			Title:    c.Title,
			Category: c.Category,
			Priority: c.Priority,
			Selected: c.Selected,
		}
	}
	return task.CreateBulkInput{Candidates: candidates}
}

// ---

type listReq struct {
	Category  string `form:"category"  binding:"omitempty,oneof=work health personal finance learning social"`
	Timeframe string `form:"timeframe" binding:"omitempty,oneof=daily weekly monthly once"`
	DueOn     string `form:"due_on"    binding:"omitempty,datetime=2006-01-02"`
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	input := task.ListInput{
		Category:  r.Category,
		Timeframe: r.Timeframe,
		Completed: r.Completed,
		Limit:     limit,
		Offset:    offset,
	}
	if r.DueOn != "" {
		if day, err := time.Parse(time.DateOnly, r.DueOn); err == nil {
			input.DueOn = &day
		}
	}
	return input
}

// ---

type updateReq struct {
	ID        string `json:"-"` // populated from URI param
	Title     string `json:"title"    binding:"omitempty,max=500"`
	Category  string `json:"category" binding:"omitempty,oneof=work health personal finance learning social"`
	Priority  string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed *bool  `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:        r.ID,
		Title:     r.Title,
		Category:  r.Category,
		Priority:  r.Priority,
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type recurrenceResp struct {
	Type     string `json:"type"`
	Interval int    `json:"interval"`
	Days     []int  `json:"days,omitempty"`
	Display  string `json:"display"`
}

func newRecurrenceResp(p *model.RecurrencePattern) *recurrenceResp {
	if p == nil {
		return nil
	}
	return &recurrenceResp{
		Type:     string(p.Type),
		Interval: p.Interval,
		Days:     p.Days,
		Display:  parse.FormatRecurrence(*p),
	}
}

type taskResp struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Category   string          `json:"category,omitempty"`
	Priority   string          `json:"priority"`
	Timeframe  string          `json:"timeframe"`
	DueDate    *time.Time      `json:"due_date,omitempty"`
	DueTime    string          `json:"due_time,omitempty"`
	Recurrence *recurrenceResp `json:"recurrence,omitempty"`
	Completed  bool            `json:"completed"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:         t.ID,
		Title:      t.Title,
		Category:   string(t.Category),
		Priority:   string(t.Priority),
		Timeframe:  string(t.Timeframe),
		DueDate:    t.DueDate,
		DueTime:    t.DueTime,
		Recurrence: newRecurrenceResp(t.Recurrence),
		Completed:  t.Completed,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type parseResp struct {
	Task parse.ParsedTask `json:"task"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{Task: out.Task}
}

type suggestResp struct {
	Candidates []parse.TaskCandidate `json:"candidates"`
}

func (h *handler) newSuggestResp(out task.SuggestOutput) suggestResp {
	if out.Candidates == nil {
		out.Candidates = []parse.TaskCandidate{}
	}
	return suggestResp{Candidates: out.Candidates}
}

type createResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{
		Task:         newTaskResp(out.Task),
		CalendarLink: out.CalendarLink,
	}
}

type createBulkResp struct {
	Tasks   []taskResp `json:"tasks"`
	Skipped int        `json:"skipped"`
}

func (h *handler) newCreateBulkResp(out task.CreateBulkOutput) createBulkResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return createBulkResp{Tasks: tasks, Skipped: out.Skipped}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
