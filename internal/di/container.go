package di

import (
	"github.com/saharsh121/Venue-Finder/internal/handler"
	"github.com/saharsh121/Venue-Finder/internal/repository"
	"github.com/saharsh121/Venue-Finder/internal/service"
	"github.com/saharsh121/Venue-Finder/internal/worker"
	"github.com/saharsh121/Venue-Finder/pkg/cache"
	"github.com/saharsh121/Venue-Finder/pkg/config"
	"github.com/saharsh121/Venue-Finder/pkg/database"
)

// Container holds all dependencies for the venue finder service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Cache cache.Store

	// Repositories
	EventRepo    repository.EventRepository
	SlotRepo     repository.VenueSlotRepository
	FeedbackRepo repository.FeedbackRepository

	// Services
	BookingService      service.BookingService
	AvailabilityService service.AvailabilityService
	FeedbackService     service.FeedbackService

	// Worker
	ReconcileWorker *worker.ReconcileWorker

	// Handlers
	BookingHandler      *handler.BookingHandler
	AvailabilityHandler *handler.AvailabilityHandler
	FeedbackHandler     *handler.FeedbackHandler
	HealthHandler       *handler.HealthHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB           *database.PostgresDB
	Cache        cache.Store
	EventRepo    repository.EventRepository
	SlotRepo     repository.VenueSlotRepository
	FeedbackRepo repository.FeedbackRepository
	Reconciler   *config.ReconcilerConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:           cfg.DB,
		Cache:        cfg.Cache,
		EventRepo:    cfg.EventRepo,
		SlotRepo:     cfg.SlotRepo,
		FeedbackRepo: cfg.FeedbackRepo,
	}

	// Initialize services
	c.BookingService = service.NewBookingService(c.EventRepo)
	c.AvailabilityService = service.NewAvailabilityService(c.SlotRepo, c.Cache, cfg.Reconciler.CacheTTL)
	c.FeedbackService = service.NewFeedbackService(c.FeedbackRepo)

	// Initialize worker
	c.ReconcileWorker = worker.NewReconcileWorker(c.EventRepo, c.SlotRepo, c.Cache, &worker.ReconcileWorkerConfig{
		Schedule:    cfg.Reconciler.Schedule,
		CycleBudget: cfg.Reconciler.CycleBudget,
	})

	// Initialize handlers
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)
	c.AvailabilityHandler = handler.NewAvailabilityHandler(c.AvailabilityService)
	c.FeedbackHandler = handler.NewFeedbackHandler(c.FeedbackService)
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.ReconcileWorker)

	return c
}

// Routes builds the handler group for route registration
func (c *Container) Routes() *handler.Routes {
	return &handler.Routes{
		Booking:      c.BookingHandler,
		Availability: c.AvailabilityHandler,
		Feedback:     c.FeedbackHandler,
		Health:       c.HealthHandler,
	}
}
