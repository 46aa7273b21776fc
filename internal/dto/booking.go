package dto

import (
	"time"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// CreateBookingRequest is the payload for booking a venue
type CreateBookingRequest struct {
	EventName   string `json:"event_name" binding:"required"`
	BookingType string `json:"booking_type" binding:"required"`
	Building    string `json:"building"`
	Floor       *int   `json:"floor"`
	RoomID      string `json:"room_id"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

// Validate checks field-level constraints that binding tags cannot
// express: a known booking type, the scope attributes that type requires,
// and a well-ordered time window. Returns a map of field problems.
func (r *CreateBookingRequest) Validate() map[string]string {
	problems := make(map[string]string)

	scope := domain.BookingScope(r.BookingType)
	if !scope.IsValid() {
		problems["booking_type"] = "booking_type must be one of: building, floor, room, day"
	}

	switch scope {
	case domain.ScopeBuilding:
		if r.Building == "" {
			problems["building"] = "building is required for building bookings"
		}
	case domain.ScopeFloor:
		if r.Building == "" {
			problems["building"] = "building is required for floor bookings"
		}
		if r.Floor == nil {
			problems["floor"] = "floor is required for floor bookings"
		}
	case domain.ScopeRoom:
		if r.RoomID == "" {
			problems["room_id"] = "room_id is required for room bookings"
		}
	}

	start, err := parseBookingTime(r.StartTime)
	if err != nil {
		problems["start_time"] = "start_time must be an RFC 3339 or yyyy-mm-dd hh:mm:ss timestamp"
	}
	end, err := parseBookingTime(r.EndTime)
	if err != nil {
		problems["end_time"] = "end_time must be an RFC 3339 or yyyy-mm-dd hh:mm:ss timestamp"
	}
	if problems["start_time"] == "" && problems["end_time"] == "" && !start.Before(end) {
		problems["start_time"] = "start_time must be before end_time"
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

// ToEvent converts a validated request into a domain Event without
// identity or phase; the service assigns those.
func (r *CreateBookingRequest) ToEvent() *domain.Event {
	start, _ := parseBookingTime(r.StartTime)
	end, _ := parseBookingTime(r.EndTime)
	return &domain.Event{
		Name:      r.EventName,
		Scope:     domain.BookingScope(r.BookingType),
		Building:  r.Building,
		Floor:     r.Floor,
		RoomID:    r.RoomID,
		StartTime: start,
		EndTime:   end,
	}
}

// bookingTimeLayouts accepts RFC 3339 plus the datetime-local format the
// original booking form submits.
var bookingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseBookingTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range bookingTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// BookingResponse is returned after a successful booking
type BookingResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
