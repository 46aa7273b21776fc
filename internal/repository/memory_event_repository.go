package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// MemoryEventRepository is an in-memory implementation of EventRepository
// for testing
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]*domain.Event

	// Optional error injection for failure-path tests
	ListErr   error
	CreateErr error
}

// NewMemoryEventRepository creates a new in-memory event repository
func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{
		events: make(map[string]*domain.Event),
	}
}

func copyEvent(event *domain.Event) *domain.Event {
	copied := *event
	if event.Floor != nil {
		floor := *event.Floor
		copied.Floor = &floor
	}
	return &copied
}

// Create persists a new event
func (r *MemoryEventRepository) Create(_ context.Context, event *domain.Event) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = copyEvent(event)
	return nil
}

// List retrieves events ordered by start time, optionally filtered by
// booking type
func (r *MemoryEventRepository) List(_ context.Context, bookingType string) ([]*domain.Event, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []*domain.Event
	for _, event := range r.events {
		if bookingType != "" && string(event.Scope) != bookingType {
			continue
		}
		events = append(events, copyEvent(event))
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}

// ListActive retrieves events whose stored phase is active
func (r *MemoryEventRepository) ListActive(_ context.Context) ([]*domain.Event, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []*domain.Event
	for _, event := range r.events {
		if event.Phase == domain.PhaseActive {
			events = append(events, copyEvent(event))
		}
	}
	return events, nil
}

// ListOverlapping retrieves events intersecting the half-open window
// [start, end)
func (r *MemoryEventRepository) ListOverlapping(_ context.Context, start, end time.Time) ([]*domain.Event, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []*domain.Event
	for _, event := range r.events {
		if domain.Overlaps(event.StartTime, event.EndTime, start, end) {
			events = append(events, copyEvent(event))
		}
	}
	return events, nil
}

// ActivateDue transitions due upcoming events to active
func (r *MemoryEventRepository) ActivateDue(_ context.Context, now time.Time) (int64, error) {
	if r.ListErr != nil {
		return 0, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for _, event := range r.events {
		if event.Phase == domain.PhaseUpcoming && !event.StartTime.After(now) && !event.EndTime.Before(now) {
			event.Phase = domain.PhaseActive
			event.UpdatedAt = now
			affected++
		}
	}
	return affected, nil
}

// CompleteElapsed transitions elapsed upcoming or active events to
// completed
func (r *MemoryEventRepository) CompleteElapsed(_ context.Context, now time.Time) (int64, error) {
	if r.ListErr != nil {
		return 0, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for _, event := range r.events {
		if event.EndTime.Before(now) && (event.Phase == domain.PhaseUpcoming || event.Phase == domain.PhaseActive) {
			event.Phase = domain.PhaseCompleted
			event.UpdatedAt = now
			affected++
		}
	}
	return affected, nil
}

// Get returns the stored event with the given id, for test assertions
func (r *MemoryEventRepository) Get(id string) *domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil
	}
	return copyEvent(event)
}
