package task

import (
	"time"

	"dayflow/internal/model"
	"dayflow/internal/parse"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

type SuggestInput struct {
	Text string
}

type CreateInput struct {
	Text string
}

// CandidateInput is one confirmed (or edited) suggestion from the client.
type CandidateInput struct {
	Title    string
	Category string
	Priority string
	Selected bool
}

type CreateBulkInput struct {
	Candidates []CandidateInput
}

type ListInput struct {
	Category  string
	Timeframe string
	DueOn     *time.Time // filter to tasks due on this calendar day
	Completed *bool
	Limit     int
	Offset    int
}

type UpdateInput struct {
	ID        string
	Title     string
	Category  string
	Priority  string
	Completed *bool
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Task parse.ParsedTask
}

type SuggestOutput struct {
	Candidates []parse.TaskCandidate
}

type CreateOutput struct {
	Task         model.Task
	CalendarLink string // deep link to the calendar event, empty unless exported
}

type CreateBulkOutput struct {
	Tasks   []model.Task
	Skipped int // candidates left unselected
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
