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

// FeedbackService defines feedback operations
type FeedbackService interface {
	// Submit persists a feedback entry
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
	// List retrieves feedback entries, newest first
	List(ctx context.Context) ([]dto.FeedbackResponse, error)
}

// feedbackService implements FeedbackService
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	now          func() time.Time
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		now:          time.Now,
	}
}

// Submit persists a feedback entry
func (s *feedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	feedback := &domain.Feedback{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		SubmittedAt: s.now(),
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("%w: creating feedback: %v", ErrStoreUnavailable, err)
	}

	return toFeedbackResponse(feedback), nil
}

// List retrieves feedback entries, newest first
func (s *feedbackService) List(ctx context.Context) ([]dto.FeedbackResponse, error) {
	entries, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing feedback: %v", ErrStoreUnavailable, err)
	}

	result := make([]dto.FeedbackResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, *toFeedbackResponse(entry))
	}
	return result, nil
}

func toFeedbackResponse(feedback *domain.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:          feedback.ID,
		Name:        feedback.Name,
		Email:       feedback.Email,
		Message:     feedback.Message,
		SubmittedAt: feedback.SubmittedAt,
	}
}
