package middleware

import (
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saharsh121/Venue-Finder/pkg/logger"
)

// ContextKeyRequestID is the gin context key holding the request id
const ContextKeyRequestID = "request_id"

// RequestLoggerConfig holds configuration for the request logger
type RequestLoggerConfig struct {
	// SkipPaths is a list of paths to skip logging
	SkipPaths []string
}

// DefaultRequestLoggerConfig returns default configuration
func DefaultRequestLoggerConfig() *RequestLoggerConfig {
	return &RequestLoggerConfig{
		SkipPaths: []string{"/health"},
	}
}

// RequestLogger logs one structured line per request and propagates a
// request id. An inbound X-Request-ID is honored; otherwise one is
// generated.
func RequestLogger(config *RequestLoggerConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultRequestLoggerConfig()
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range config.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", clientIP(c)),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		log := logger.Get().WithContext(c.Request.Context())
		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// GetRequestID returns the request id set by RequestLogger
func GetRequestID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextKeyRequestID)
	if !exists {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// clientIP extracts the client IP address, preferring proxy headers
func clientIP(c *gin.Context) string {
	xff := c.GetHeader("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.GetHeader("X-Real-IP")
	if xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
