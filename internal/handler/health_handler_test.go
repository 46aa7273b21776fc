package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saharsh121/Venue-Finder/internal/repository"
	"github.com/saharsh121/Venue-Finder/internal/worker"
	"github.com/saharsh121/Venue-Finder/pkg/response"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func newHealthRouter(db Pinger, w *worker.ReconcileWorker) *gin.Engine {
	router := gin.New()
	h := NewHealthHandler(db, w)
	router.GET("/health", h.Health)
	router.GET("/health/worker", h.WorkerStats)
	return router
}

func TestHealth(t *testing.T) {
	router := newHealthRouter(stubPinger{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
}

func TestHealthDatabaseUnreachable(t *testing.T) {
	router := newHealthRouter(stubPinger{err: errors.New("connection refused")}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrCodeStoreUnavailable, env.Error.Code)
}

func TestWorkerStats(t *testing.T) {
	rw := worker.NewReconcileWorker(
		repository.NewMemoryEventRepository(),
		repository.NewMemoryVenueSlotRepository(),
		nil,
		nil,
	)
	router := newHealthRouter(nil, rw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/worker", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
}

func TestWorkerStatsWithoutWorker(t *testing.T) {
	router := newHealthRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/worker", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
