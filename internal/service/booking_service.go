package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saharsh121/Venue-Finder/internal/domain"
	"github.com/saharsh121/Venue-Finder/internal/dto"
	"github.com/saharsh121/Venue-Finder/internal/repository"
)

// BookingService defines booking operations
type BookingService interface {
	// CheckAndBook validates the request, rejects time conflicts, and
	// persists the event with phase upcoming
	CheckAndBook(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	// ListEvents retrieves events with their phase recomputed at read
	// time; the status filter applies to the recomputed phase
	ListEvents(ctx context.Context, query *dto.ListEventsQuery) (*dto.ListEventsResponse, error)
}

// bookingService implements BookingService
type bookingService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

// NewBookingService creates a new BookingService
func NewBookingService(eventRepo repository.EventRepository) BookingService {
	return &bookingService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// CheckAndBook validates and persists a booking
func (s *bookingService) CheckAndBook(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if problems := req.Validate(); problems != nil {
		return nil, &ValidationError{Fields: problems}
	}

	event := req.ToEvent()

	// Conflict policy is global: any overlapping event conflicts, even at
	// an unrelated venue.
	overlapping, err := s.eventRepo.ListOverlapping(ctx, event.StartTime, event.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: checking conflicts: %v", ErrStoreUnavailable, err)
	}
	if len(overlapping) > 0 {
		return nil, ErrConflict
	}

	now := s.now()
	event.ID = uuid.New().String()
	event.Phase = domain.PhaseUpcoming
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: creating event: %v", ErrStoreUnavailable, err)
	}

	return &dto.BookingResponse{
		ID:      event.ID,
		Message: "Event booked successfully!",
	}, nil
}

// ListEvents retrieves events with dynamically recomputed phases. The
// stored phase may lag the clock by up to one reconcile period; the read
// path always wins.
func (s *bookingService) ListEvents(ctx context.Context, query *dto.ListEventsQuery) (*dto.ListEventsResponse, error) {
	events, err := s.eventRepo.List(ctx, query.BookingType)
	if err != nil {
		return nil, fmt.Errorf("%w: listing events: %v", ErrStoreUnavailable, err)
	}

	// One clock reading for the whole listing.
	now := s.now()

	result := make([]domain.Event, 0, len(events))
	for _, event := range events {
		event.Phase = domain.ClassifyPhase(now, event.StartTime, event.EndTime)
		if query.Status != "" && string(event.Phase) != query.Status {
			continue
		}
		result = append(result, *event)
	}

	return &dto.ListEventsResponse{Events: result}, nil
}
