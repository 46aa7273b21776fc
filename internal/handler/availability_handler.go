package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saharsh121/Venue-Finder/internal/dto"
	"github.com/saharsh121/Venue-Finder/internal/service"
	"github.com/saharsh121/Venue-Finder/pkg/response"
)

// AvailabilityHandler handles vacancy lookup HTTP requests
type AvailabilityHandler struct {
	availabilityService service.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler
func NewAvailabilityHandler(availabilityService service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// Find handles GET /availability - lists vacant slots for a day, narrowed
// by optional building, floor and time slot filters
func (h *AvailabilityHandler) Find(c *gin.Context) {
	var query dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.InvalidQuery(""))
		return
	}

	result, err := h.availabilityService.FindVacant(c.Request.Context(), &query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, response.InvalidQuery(err.Error()))
			return
		}
		if errors.Is(err, service.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, response.StoreUnavailable(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to check availability"))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
