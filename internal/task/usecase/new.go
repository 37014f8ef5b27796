package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"dayflow/internal/parse"
	"dayflow/internal/task/repository"
	"dayflow/pkg/gcalendar"
	pkgLog "dayflow/pkg/log"
)

// CalendarClient is the slice of gcalendar.Client this use case needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	parser     *parse.Parser
	repo       repository.Repository
	calendar   CalendarClient // nil when calendar export is not configured
	calendarID string
	timezone   string

	// suggestions caches Suggest results keyed by input text. Parsing is
	// pure, so identical input always yields an identical candidate list.
	suggestions *expirable.LRU[string, []parse.TaskCandidate]
}

// Config holds the knobs for the task UseCase.
type Config struct {
	CalendarID       string
	Timezone         string
	SuggestCacheSize int
	SuggestCacheTTL  time.Duration
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	parser *parse.Parser,
	repo repository.Repository,
	calendar CalendarClient,
	cfg Config,
) *implUseCase {
	size := cfg.SuggestCacheSize
	if size <= 0 {
		size = 128
	}
	ttl := cfg.SuggestCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &implUseCase{
		l:           l,
		parser:      parser,
		repo:        repo,
		calendar:    calendar,
		calendarID:  cfg.CalendarID,
		timezone:    cfg.Timezone,
		suggestions: expirable.NewLRU[string, []parse.TaskCandidate](size, nil, ttl),
	}
}
