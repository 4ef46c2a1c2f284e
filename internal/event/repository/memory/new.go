package memory

import (
	"sync"
	"time"

	"cie-dashboard/internal/event"
	"cie-dashboard/internal/event/repository"
	"cie-dashboard/pkg/log"
)

type record struct {
	seq   uint64
	event event.Event
}

type implRepository struct {
	mu      sync.RWMutex
	l       log.Logger
	now     func() time.Time
	seq     uint64
	records map[string]record
}

// New creates an in-process Repository. Contents are lost on restart.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:       l,
		now:     time.Now,
		records: make(map[string]record),
	}
}
