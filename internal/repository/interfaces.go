package repository

import (
	"context"
	"time"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// EventRepository defines storage operations for events
type EventRepository interface {
	// Create persists a new event
	Create(ctx context.Context, event *domain.Event) error
	// List retrieves events, optionally filtered by booking type, ordered
	// by start time
	List(ctx context.Context, bookingType string) ([]*domain.Event, error)
	// ListActive retrieves events whose stored phase is active
	ListActive(ctx context.Context) ([]*domain.Event, error)
	// ListOverlapping retrieves events whose [start,end) window intersects
	// the given half-open window
	ListOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Event, error)
	// ActivateDue transitions upcoming events whose window contains now to
	// active. Returns the number of transitions.
	ActivateDue(ctx context.Context, now time.Time) (int64, error)
	// CompleteElapsed transitions upcoming or active events whose window
	// has passed to completed. Completed events are never touched again.
	// Returns the number of transitions.
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

// VenueSlotRepository defines storage operations for venue slots
type VenueSlotRepository interface {
	// List retrieves every venue slot
	List(ctx context.Context) ([]*domain.VenueSlot, error)
	// FindVacant retrieves vacant slots matching the filters; day is
	// mandatory, the rest apply only when set
	FindVacant(ctx context.Context, day int, building string, floor *int, timeSlot string) ([]*domain.VenueSlot, error)
	// UpdateStatus writes a slot's derived status
	UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error
}

// FeedbackRepository defines storage operations for feedback entries
type FeedbackRepository interface {
	// Create persists a feedback entry
	Create(ctx context.Context, feedback *domain.Feedback) error
	// List retrieves feedback entries, newest first
	List(ctx context.Context) ([]*domain.Feedback, error)
}
