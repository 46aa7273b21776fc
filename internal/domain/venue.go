package domain

import "time"

// SlotStatus is the derived occupancy status of a venue slot
type SlotStatus string

// SlotStatus constants
const (
	SlotOccupied SlotStatus = "occupied"
	SlotVacant   SlotStatus = "vacant"
)

// VenueSlot represents one addressable bookable unit for one day of the
// week. Its status reflects whether any active event covers it, as of the
// last reconcile cycle.
type VenueSlot struct {
	ID        int64      `json:"id"`
	Building  string     `json:"building"`
	Floor     int        `json:"floor"`
	RoomID    string     `json:"room_id"`
	Day       int        `json:"day"` // 1=Sunday .. 7=Saturday
	TimeSlot  string     `json:"time_slot,omitempty"`
	Status    SlotStatus `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// WeekdayOf converts a timestamp's weekday into the slot numbering
// convention: 1=Sunday through 7=Saturday (the seed data follows MySQL's
// DAYOFWEEK). Go's time.Weekday counts from 0=Sunday, hence the +1.
func WeekdayOf(t time.Time) int {
	return int(t.Weekday()) + 1
}

// DeriveStatus computes a slot's target status from the set of currently
// active events: occupied iff at least one covers it.
func DeriveStatus(slot *VenueSlot, active []*Event) SlotStatus {
	for _, event := range active {
		if event.Covers(slot) {
			return SlotOccupied
		}
	}
	return SlotVacant
}
