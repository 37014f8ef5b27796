package inmem

import (
	"sync"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/task/repository"
	pkgLog "dayflow/pkg/log"
)

// implRepository is a mutex-guarded in-memory task store. It is the local
// fallback used when no remote document store is configured; the UseCase only
// ever sees the repository.Repository interface.
type implRepository struct {
	l     pkgLog.Logger
	mu    sync.RWMutex
	tasks map[string]model.Task
	now   func() time.Time
}

// New creates a new in-memory task repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		tasks: make(map[string]model.Task),
		now:   time.Now,
	}
}
