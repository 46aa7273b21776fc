package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saharsh121/Venue-Finder/internal/domain"
	"github.com/saharsh121/Venue-Finder/internal/dto"
	"github.com/saharsh121/Venue-Finder/internal/repository"
	"github.com/saharsh121/Venue-Finder/pkg/cache"
	"github.com/saharsh121/Venue-Finder/pkg/logger"
)

// AvailabilityCachePrefix namespaces availability entries in the cache.
// The reconcile worker flushes this prefix after cycles that changed
// slot statuses.
const AvailabilityCachePrefix = "availability:"

// AvailabilityService defines the vacancy lookup operation
type AvailabilityService interface {
	// FindVacant retrieves vacant slots for the mandatory day filter,
	// narrowed by the optional filters
	FindVacant(ctx context.Context, query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, error)
}

// availabilityService implements AvailabilityService with a cache-aside
// read path
type availabilityService struct {
	slotRepo repository.VenueSlotRepository
	cache    cache.Store
	cacheTTL time.Duration
}

// NewAvailabilityService creates a new AvailabilityService. store may be
// nil, which disables caching.
func NewAvailabilityService(slotRepo repository.VenueSlotRepository, store cache.Store, cacheTTL time.Duration) AvailabilityService {
	return &availabilityService{
		slotRepo: slotRepo,
		cache:    store,
		cacheTTL: cacheTTL,
	}
}

// FindVacant retrieves vacant slots matching the query
func (s *availabilityService) FindVacant(ctx context.Context, query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, error) {
	if query.Day == nil {
		return nil, fmt.Errorf("%w: day is required", ErrInvalidQuery)
	}
	if *query.Day < 1 || *query.Day > 7 {
		return nil, fmt.Errorf("%w: day must be between 1 and 7", ErrInvalidQuery)
	}

	key := s.cacheKey(query)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			resp := &dto.AvailabilityResponse{}
			if err := json.Unmarshal(cached, resp); err == nil {
				return resp, nil
			}
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			// A broken cache degrades to direct reads.
			logger.Get().WarnContext(ctx, "availability cache read failed", zap.Error(err))
		}
	}

	slots, err := s.slotRepo.FindVacant(ctx, *query.Day, query.Building, query.Floor, query.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("%w: finding vacant slots: %v", ErrStoreUnavailable, err)
	}

	rooms := make([]domain.VenueSlot, 0, len(slots))
	for _, slot := range slots {
		rooms = append(rooms, *slot)
	}

	resp := &dto.AvailabilityResponse{
		Filters: query.Filters(),
		Rooms:   rooms,
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.cacheTTL); err != nil {
				logger.Get().WarnContext(ctx, "availability cache write failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *availabilityService) cacheKey(query *dto.AvailabilityQuery) string {
	floor := ""
	if query.Floor != nil {
		floor = fmt.Sprintf("%d", *query.Floor)
	}
	return fmt.Sprintf("%s%d:%s:%s:%s", AvailabilityCachePrefix, *query.Day, query.Building, floor, query.TimeSlot)
}
