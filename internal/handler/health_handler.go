package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saharsh121/Venue-Finder/internal/worker"
	"github.com/saharsh121/Venue-Finder/pkg/response"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health and diagnostics requests
type HealthHandler struct {
	db     Pinger
	worker *worker.ReconcileWorker
}

// NewHealthHandler creates a new HealthHandler. db and w may be nil.
func NewHealthHandler(db Pinger, w *worker.ReconcileWorker) *HealthHandler {
	return &HealthHandler{
		db:     db,
		worker: w,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, response.Error(response.ErrCodeStoreUnavailable, "Database unreachable"))
			return
		}
		status["database"] = "ok"
	}

	c.JSON(http.StatusOK, response.Success(status))
}

// WorkerStats handles GET /health/worker - reports reconcile worker
// statistics
func (h *HealthHandler) WorkerStats(c *gin.Context) {
	if h.worker == nil {
		c.JSON(http.StatusNotFound, response.NotFound("Worker not running"))
		return
	}

	stats := h.worker.GetStats()
	c.JSON(http.StatusOK, response.Success(gin.H{
		"is_running":         stats.IsRunning,
		"total_cycles":       stats.TotalCycles,
		"total_slot_updates": stats.TotalSlotUpdates,
		"total_errors":       stats.TotalErrors,
		"last_cycle_time":    stats.LastCycleTime,
		"last_update_count":  stats.LastUpdateCount,
	}))
}
