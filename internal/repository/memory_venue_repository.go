package repository

import (
	"context"
	"sync"
	"time"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// MemoryVenueSlotRepository is an in-memory implementation of
// VenueSlotRepository for testing
type MemoryVenueSlotRepository struct {
	mu    sync.RWMutex
	slots map[int64]*domain.VenueSlot

	// UpdateCount tracks status writes, for idempotence assertions
	UpdateCount int

	// Optional error injection for failure-path tests
	ListErr error
	// UpdateErrFor fails UpdateStatus for the given slot ids
	UpdateErrFor map[int64]error
}

// NewMemoryVenueSlotRepository creates a new in-memory venue slot
// repository
func NewMemoryVenueSlotRepository() *MemoryVenueSlotRepository {
	return &MemoryVenueSlotRepository{
		slots: make(map[int64]*domain.VenueSlot),
	}
}

// Seed inserts slots directly, for test setup
func (r *MemoryVenueSlotRepository) Seed(slots ...*domain.VenueSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, slot := range slots {
		copied := *slot
		r.slots[slot.ID] = &copied
	}
}

// List retrieves every venue slot
func (r *MemoryVenueSlotRepository) List(_ context.Context) ([]*domain.VenueSlot, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var slots []*domain.VenueSlot
	for _, slot := range r.slots {
		copied := *slot
		slots = append(slots, &copied)
	}
	return slots, nil
}

// FindVacant retrieves vacant slots for the given day, narrowed by the
// optional filters
func (r *MemoryVenueSlotRepository) FindVacant(_ context.Context, day int, building string, floor *int, timeSlot string) ([]*domain.VenueSlot, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var slots []*domain.VenueSlot
	for _, slot := range r.slots {
		if slot.Status != domain.SlotVacant || slot.Day != day {
			continue
		}
		if building != "" && slot.Building != building {
			continue
		}
		if floor != nil && slot.Floor != *floor {
			continue
		}
		if timeSlot != "" && slot.TimeSlot != timeSlot {
			continue
		}
		copied := *slot
		slots = append(slots, &copied)
	}
	return slots, nil
}

// UpdateStatus writes a slot's derived status
func (r *MemoryVenueSlotRepository) UpdateStatus(_ context.Context, id int64, status domain.SlotStatus) error {
	if err := r.UpdateErrFor[id]; err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[id]
	if !ok {
		return ErrSlotNotFound
	}
	slot.Status = status
	slot.UpdatedAt = time.Now()
	r.UpdateCount++
	return nil
}

// Get returns the stored slot with the given id, for test assertions
func (r *MemoryVenueSlotRepository) Get(id int64) *domain.VenueSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot, ok := r.slots[id]
	if !ok {
		return nil
	}
	copied := *slot
	return &copied
}
