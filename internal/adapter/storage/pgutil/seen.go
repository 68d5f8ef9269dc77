package pgutil

import (
	"github.com/fitlife/fitlife_backend/internal/domain"
	"sync"
)

type eventSource interface {
	PopEvents() []domain.Event
}

// SeenSet tracks aggregates touched inside one atomic context so their
// domain events can be collected after commit.
type SeenSet[T eventSource] struct {
	mu   sync.Mutex
	seen map[string]T
}

func NewSeenSet[T eventSource]() *SeenSet[T] {
	return &SeenSet[T]{
		seen: make(map[string]T),
	}
}

func (s *SeenSet[T]) Mark(id string, agg T) {
	s.mu.Lock()
	s.seen[id] = agg
	s.mu.Unlock()
}

func (s *SeenSet[T]) CollectEvents() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []domain.Event
	for _, agg := range s.seen {
		events = append(events, agg.PopEvents()...)
	}
	s.seen = make(map[string]T)
	return events
}
