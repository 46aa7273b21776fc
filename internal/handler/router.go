package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/saharsh121/Venue-Finder/pkg/middleware"
)

// Routes groups the handlers mounted by RegisterRoutes
type Routes struct {
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Feedback     *FeedbackHandler
	Health       *HealthHandler
}

// RegisterRoutes mounts every handler on the engine
func RegisterRoutes(router *gin.Engine, routes *Routes) {
	router.Use(middleware.RequestLogger(nil))

	router.GET("/health", routes.Health.Health)
	router.GET("/health/worker", routes.Health.WorkerStats)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/bookings", routes.Booking.Create)
		v1.GET("/events", routes.Booking.ListEvents)
		v1.GET("/availability", routes.Availability.Find)
		v1.POST("/feedback", routes.Feedback.Submit)
		v1.GET("/feedback", routes.Feedback.List)
	}
}
