package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(config *RequestLoggerConfig) (*gin.Engine, *string) {
	var captured string
	router := gin.New()
	router.Use(RequestLogger(config))
	router.GET("/ping", func(c *gin.Context) {
		if id, ok := GetRequestID(c); ok {
			captured = id
		}
		c.Status(http.StatusOK)
	})
	router.GET("/health", func(c *gin.Context) {
		if id, ok := GetRequestID(c); ok {
			captured = id
		}
		c.Status(http.StatusOK)
	})
	return router, &captured
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	router, captured := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, *captured)
	_, err := uuid.Parse(*captured)
	assert.NoError(t, err)
	assert.Equal(t, *captured, w.Header().Get("X-Request-ID"))
}

func TestRequestLoggerHonorsInboundRequestID(t *testing.T) {
	router, captured := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", *captured)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestRequestLoggerSkipsConfiguredPaths(t *testing.T) {
	router, captured := newTestRouter(DefaultRequestLoggerConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *captured)
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "x-forwarded-for single",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.5"},
			remote:  "10.0.0.1:1234",
			want:    "203.0.113.5",
		},
		{
			name:    "x-forwarded-for chain uses first hop",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"},
			remote:  "10.0.0.1:1234",
			want:    "203.0.113.5",
		},
		{
			name:    "x-real-ip fallback",
			headers: map[string]string{"X-Real-IP": "198.51.100.7"},
			remote:  "10.0.0.1:1234",
			want:    "198.51.100.7",
		},
		{
			name:   "remote addr fallback",
			remote: "10.0.0.1:1234",
			want:   "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientIP(c))
		})
	}
}
