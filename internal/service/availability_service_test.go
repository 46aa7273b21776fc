package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saharsh121/Venue-Finder/internal/domain"
	"github.com/saharsh121/Venue-Finder/internal/dto"
	"github.com/saharsh121/Venue-Finder/internal/repository"
	"github.com/saharsh121/Venue-Finder/pkg/cache"
)

func seedSlots(repo *repository.MemoryVenueSlotRepository) {
	repo.Seed(
		&domain.VenueSlot{ID: 1, Building: "B1", Floor: 1, RoomID: "R1", Day: 2, Status: domain.SlotVacant},
		&domain.VenueSlot{ID: 2, Building: "B1", Floor: 2, RoomID: "R2", Day: 2, Status: domain.SlotOccupied},
		&domain.VenueSlot{ID: 3, Building: "B2", Floor: 1, RoomID: "R3", Day: 2, Status: domain.SlotVacant},
		&domain.VenueSlot{ID: 4, Building: "B1", Floor: 1, RoomID: "R4", Day: 3, Status: domain.SlotVacant},
	)
}

func dayPtr(d int) *int { return &d }

func TestFindVacant(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryVenueSlotRepository()
	seedSlots(repo)
	svc := NewAvailabilityService(repo, nil, 0)

	tests := []struct {
		name    string
		query   dto.AvailabilityQuery
		wantIDs map[int64]bool
	}{
		{
			"day only",
			dto.AvailabilityQuery{Day: dayPtr(2)},
			map[int64]bool{1: true, 3: true},
		},
		{
			"day and building includes matching slot",
			dto.AvailabilityQuery{Day: dayPtr(2), Building: "B1"},
			map[int64]bool{1: true},
		},
		{
			"other day excludes it",
			dto.AvailabilityQuery{Day: dayPtr(3), Building: "B1"},
			map[int64]bool{4: true},
		},
		{
			"floor filter",
			dto.AvailabilityQuery{Day: dayPtr(2), Building: "B1", Floor: dayPtr(2)},
			map[int64]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.FindVacant(ctx, &tt.query)
			if err != nil {
				t.Fatalf("FindVacant() error = %v", err)
			}
			if len(resp.Rooms) != len(tt.wantIDs) {
				t.Fatalf("len(Rooms) = %d, want %d", len(resp.Rooms), len(tt.wantIDs))
			}
			for _, room := range resp.Rooms {
				if !tt.wantIDs[room.ID] {
					t.Errorf("unexpected slot %d in result", room.ID)
				}
				if room.Status != domain.SlotVacant {
					t.Errorf("slot %d status = %v, want vacant", room.ID, room.Status)
				}
			}
		})
	}
}

func TestFindVacantRequiresDay(t *testing.T) {
	ctx := context.Background()
	svc := NewAvailabilityService(repository.NewMemoryVenueSlotRepository(), nil, 0)

	_, err := svc.FindVacant(ctx, &dto.AvailabilityQuery{Building: "B1"})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("error = %v, want ErrInvalidQuery", err)
	}

	_, err = svc.FindVacant(ctx, &dto.AvailabilityQuery{Day: dayPtr(9)})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("day=9: error = %v, want ErrInvalidQuery", err)
	}
}

func TestFindVacantFiltersEcho(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryVenueSlotRepository()
	seedSlots(repo)
	svc := NewAvailabilityService(repo, nil, 0)

	resp, err := svc.FindVacant(ctx, &dto.AvailabilityQuery{Day: dayPtr(2), Building: "B1"})
	if err != nil {
		t.Fatalf("FindVacant() error = %v", err)
	}
	if resp.Filters.Day != 2 {
		t.Errorf("Filters.Day = %d, want 2", resp.Filters.Day)
	}
	if resp.Filters.Building == nil || *resp.Filters.Building != "B1" {
		t.Errorf("Filters.Building = %v, want B1", resp.Filters.Building)
	}
	if resp.Filters.Floor != nil {
		t.Errorf("Filters.Floor = %v, want nil", resp.Filters.Floor)
	}
}

func TestFindVacantUsesCache(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryVenueSlotRepository()
	seedSlots(repo)
	store := cache.NewMemoryStore()
	svc := NewAvailabilityService(repo, store, time.Minute)

	query := &dto.AvailabilityQuery{Day: dayPtr(2), Building: "B1"}

	first, err := svc.FindVacant(ctx, query)
	if err != nil {
		t.Fatalf("first FindVacant() error = %v", err)
	}

	// Responses after the slot changed underneath must still come from
	// cache until the worker flushes it.
	repo.Seed(&domain.VenueSlot{ID: 1, Building: "B1", Floor: 1, RoomID: "R1", Day: 2, Status: domain.SlotOccupied})

	second, err := svc.FindVacant(ctx, query)
	if err != nil {
		t.Fatalf("second FindVacant() error = %v", err)
	}
	if len(second.Rooms) != len(first.Rooms) {
		t.Errorf("cached result should match first result")
	}

	// After a flush the fresh state is visible.
	if err := store.FlushPrefix(ctx, AvailabilityCachePrefix); err != nil {
		t.Fatal(err)
	}
	third, err := svc.FindVacant(ctx, query)
	if err != nil {
		t.Fatalf("third FindVacant() error = %v", err)
	}
	if len(third.Rooms) != 0 {
		t.Errorf("len(Rooms) = %d after flush, want 0", len(third.Rooms))
	}
}

func TestFindVacantStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryVenueSlotRepository()
	repo.ListErr = errors.New("connection refused")
	svc := NewAvailabilityService(repo, nil, 0)

	_, err := svc.FindVacant(ctx, &dto.AvailabilityQuery{Day: dayPtr(2)})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("error = %v, want ErrStoreUnavailable", err)
	}
}
