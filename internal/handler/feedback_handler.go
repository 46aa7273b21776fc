package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saharsh121/Venue-Finder/internal/dto"
	"github.com/saharsh121/Venue-Finder/internal/service"
	"github.com/saharsh121/Venue-Finder/pkg/response"
)

// FeedbackHandler handles feedback HTTP requests
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// Submit handles POST /feedback - stores a feedback entry
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Name, email and message are required"))
		return
	}

	feedback, err := h.feedbackService.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, response.StoreUnavailable(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to submit feedback"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(feedback))
}

// List handles GET /feedback - lists stored feedback entries
func (h *FeedbackHandler) List(c *gin.Context) {
	entries, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, response.StoreUnavailable(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list feedback"))
		return
	}

	c.JSON(http.StatusOK, response.Success(entries))
}
