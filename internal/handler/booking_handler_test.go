package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saharsh121/Venue-Finder/internal/repository"
	"github.com/saharsh121/Venue-Finder/internal/service"
	"github.com/saharsh121/Venue-Finder/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the response wrapper for decoding in tests
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func newBookingRouter(eventRepo *repository.MemoryEventRepository) *gin.Engine {
	router := gin.New()
	h := NewBookingHandler(service.NewBookingService(eventRepo))
	router.POST("/bookings", h.Create)
	router.GET("/events", h.ListEvents)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	encoded, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	eventRepo := repository.NewMemoryEventRepository()
	router := newBookingRouter(eventRepo)

	w := postJSON(router, "/bookings", map[string]any{
		"event_name":   "Robotics Workshop",
		"booking_type": "room",
		"room_id":      "R1",
		"start_time":   "2030-06-01T10:00:00Z",
		"end_time":     "2030-06-01T12:00:00Z",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var booking struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.NotEmpty(t, booking.ID)
	assert.NotNil(t, eventRepo.Get(booking.ID))
}

func TestCreateBookingConflict(t *testing.T) {
	eventRepo := repository.NewMemoryEventRepository()
	router := newBookingRouter(eventRepo)

	first := postJSON(router, "/bookings", map[string]any{
		"event_name":   "First",
		"booking_type": "room",
		"room_id":      "R1",
		"start_time":   "2030-06-01T10:00:00Z",
		"end_time":     "2030-06-01T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	// Overlaps the first booking, at a different venue. Conflicts anyway.
	second := postJSON(router, "/bookings", map[string]any{
		"event_name":   "Second",
		"booking_type": "building",
		"building":     "B2",
		"start_time":   "2030-06-01T11:00:00Z",
		"end_time":     "2030-06-01T13:00:00Z",
	})

	assert.Equal(t, http.StatusConflict, second.Code)
	env := decodeEnvelope(t, second)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrCodeConflict, env.Error.Code)
	// The message stays generic and never claims the booking succeeded.
	assert.Equal(t, "time conflict with another event", env.Error.Message)
	assert.NotContains(t, env.Error.Message, "Booked")
}

func TestCreateBookingValidationFailure(t *testing.T) {
	router := newBookingRouter(repository.NewMemoryEventRepository())

	w := postJSON(router, "/bookings", map[string]any{
		"event_name":   "No Room",
		"booking_type": "room",
		"start_time":   "2030-06-01T10:00:00Z",
		"end_time":     "2030-06-01T12:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrCodeValidationFailed, env.Error.Code)
	assert.Contains(t, env.Error.Details, "room_id")
}

func TestCreateBookingRejectsMalformedBody(t *testing.T) {
	router := newBookingRouter(repository.NewMemoryEventRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrCodeBadRequest, env.Error.Code)
}

func TestCreateBookingStoreUnavailable(t *testing.T) {
	eventRepo := repository.NewMemoryEventRepository()
	eventRepo.ListErr = errors.New("store down")
	router := newBookingRouter(eventRepo)

	w := postJSON(router, "/bookings", map[string]any{
		"event_name":   "Doomed",
		"booking_type": "room",
		"room_id":      "R1",
		"start_time":   "2030-06-01T10:00:00Z",
		"end_time":     "2030-06-01T12:00:00Z",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrCodeStoreUnavailable, env.Error.Code)
}

func TestListEvents(t *testing.T) {
	eventRepo := repository.NewMemoryEventRepository()
	router := newBookingRouter(eventRepo)

	created := postJSON(router, "/bookings", map[string]any{
		"event_name":   "Future Fair",
		"booking_type": "building",
		"building":     "B1",
		"start_time":   "2030-06-01T10:00:00Z",
		"end_time":     "2030-06-01T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var listing struct {
		Events []struct {
			Name   string `json:"event_name"`
			Status string `json:"status"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	require.Len(t, listing.Events, 1)
	assert.Equal(t, "Future Fair", listing.Events[0].Name)
	assert.Equal(t, "upcoming", listing.Events[0].Status)
}

func TestListEventsStatusFilter(t *testing.T) {
	eventRepo := repository.NewMemoryEventRepository()
	router := newBookingRouter(eventRepo)

	created := postJSON(router, "/bookings", map[string]any{
		"event_name":   "Future Fair",
		"booking_type": "building",
		"building":     "B1",
		"start_time":   "2030-06-01T10:00:00Z",
		"end_time":     "2030-06-01T12:00:00Z",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events?status=completed", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var listing struct {
		Events []json.RawMessage `json:"events"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	assert.Empty(t, listing.Events)
}
