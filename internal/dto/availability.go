package dto

import "github.com/saharsh121/Venue-Finder/internal/domain"

// AvailabilityQuery holds the filters for a vacancy lookup. Day is
// mandatory; the rest are optional equality filters.
type AvailabilityQuery struct {
	Day      *int   `form:"day"`
	Building string `form:"building"`
	Floor    *int   `form:"floor"`
	TimeSlot string `form:"time_slot"`
}

// AvailabilityFilters echoes the applied filters back to the caller
type AvailabilityFilters struct {
	Day      int     `json:"day"`
	Building *string `json:"building"`
	Floor    *int    `json:"floor"`
	TimeSlot *string `json:"time_slot"`
}

// AvailabilityResponse is the vacancy lookup result
type AvailabilityResponse struct {
	Filters AvailabilityFilters `json:"filters"`
	Rooms   []domain.VenueSlot  `json:"rooms"`
}

// Filters builds the response echo from the query
func (q *AvailabilityQuery) Filters() AvailabilityFilters {
	f := AvailabilityFilters{Floor: q.Floor}
	if q.Day != nil {
		f.Day = *q.Day
	}
	if q.Building != "" {
		f.Building = &q.Building
	}
	if q.TimeSlot != "" {
		f.TimeSlot = &q.TimeSlot
	}
	return f
}

// ListEventsQuery holds the filters for the event listing
type ListEventsQuery struct {
	Status      string `form:"status"`
	BookingType string `form:"booking_type"`
}

// ListEventsResponse is the event listing result
type ListEventsResponse struct {
	Events []domain.Event `json:"events"`
}
