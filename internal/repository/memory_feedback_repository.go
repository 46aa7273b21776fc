package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// MemoryFeedbackRepository is an in-memory implementation of
// FeedbackRepository for testing
type MemoryFeedbackRepository struct {
	mu      sync.RWMutex
	entries []*domain.Feedback
}

// NewMemoryFeedbackRepository creates a new in-memory feedback repository
func NewMemoryFeedbackRepository() *MemoryFeedbackRepository {
	return &MemoryFeedbackRepository{}
}

// Create persists a feedback entry
func (r *MemoryFeedbackRepository) Create(_ context.Context, feedback *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *feedback
	r.entries = append(r.entries, &copied)
	return nil
}

// List retrieves feedback entries, newest first
func (r *MemoryFeedbackRepository) List(_ context.Context) ([]*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*domain.Feedback, 0, len(r.entries))
	for _, entry := range r.entries {
		copied := *entry
		entries = append(entries, &copied)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SubmittedAt.After(entries[j].SubmittedAt)
	})
	return entries, nil
}
