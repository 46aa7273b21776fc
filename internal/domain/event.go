package domain

import "time"

// Phase is the lifecycle state of an event, derived from wall-clock time
type Phase string

// Phase constants
const (
	PhaseUpcoming  Phase = "upcoming"
	PhaseActive    Phase = "active"
	PhaseCompleted Phase = "completed"
)

// IsValid checks if the phase is a known value
func (p Phase) IsValid() bool {
	switch p {
	case PhaseUpcoming, PhaseActive, PhaseCompleted:
		return true
	}
	return false
}

// BookingScope is the granularity a booking applies to
type BookingScope string

// BookingScope constants
const (
	ScopeBuilding BookingScope = "building"
	ScopeFloor    BookingScope = "floor"
	ScopeRoom     BookingScope = "room"
	ScopeDay      BookingScope = "day"
)

// IsValid checks if the scope is a known value
func (s BookingScope) IsValid() bool {
	switch s {
	case ScopeBuilding, ScopeFloor, ScopeRoom, ScopeDay:
		return true
	}
	return false
}

// Event represents a venue booking
type Event struct {
	ID        string       `json:"id"`
	Name      string       `json:"event_name"`
	Scope     BookingScope `json:"booking_type"`
	Building  string       `json:"building,omitempty"`
	Floor     *int         `json:"floor,omitempty"`
	RoomID    string       `json:"room_id,omitempty"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
	Phase     Phase        `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ClassifyPhase derives the lifecycle phase of an event from a single
// clock reading. Callers performing several classifications in one pass
// must reuse the same now value.
func ClassifyPhase(now, start, end time.Time) Phase {
	if now.Before(start) {
		return PhaseUpcoming
	}
	if now.After(end) {
		return PhaseCompleted
	}
	return PhaseActive
}

// Covers reports whether this event occupies the given venue slot.
// Meaningful only for active-phase events; the caller filters on phase.
func (e *Event) Covers(slot *VenueSlot) bool {
	switch e.Scope {
	case ScopeBuilding:
		return e.Building == slot.Building
	case ScopeFloor:
		return e.Building == slot.Building && e.Floor != nil && *e.Floor == slot.Floor
	case ScopeRoom:
		return e.RoomID == slot.RoomID
	case ScopeDay:
		return WeekdayOf(e.StartTime) == slot.Day
	default:
		// Unknown scopes never occupy anything. Validation rejects them at
		// booking time, so this arm only fires for pre-existing rows.
		return false
	}
}

// Overlaps reports whether two half-open [start,end) intervals intersect.
// Bookings that merely touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
