package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saharsh121/Venue-Finder/internal/dto"
	"github.com/saharsh121/Venue-Finder/internal/service"
	"github.com/saharsh121/Venue-Finder/pkg/response"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Create handles POST /bookings - checks for conflicts and books a venue
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	booking, err := h.bookingService.CheckAndBook(c.Request.Context(), &req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, response.ValidationFailed(verr.Fields))
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, response.Conflict(service.ErrConflict.Error()))
		case errors.Is(err, service.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, response.StoreUnavailable(""))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create booking"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(booking))
}

// ListEvents handles GET /events - lists bookings with freshly derived
// lifecycle status
func (h *BookingHandler) ListEvents(c *gin.Context) {
	var query dto.ListEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.InvalidQuery(""))
		return
	}

	events, err := h.bookingService.ListEvents(c.Request.Context(), &query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, response.InvalidQuery(err.Error()))
			return
		}
		if errors.Is(err, service.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, response.StoreUnavailable(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list events"))
		return
	}

	c.JSON(http.StatusOK, response.Success(events))
}
