package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConflict signals a time conflict with an existing event. The
	// conflicting event is deliberately not identified to callers.
	ErrConflict = errors.New("time conflict with another event")

	// ErrInvalidQuery signals a query missing a required filter
	ErrInvalidQuery = errors.New("invalid query")

	// ErrStoreUnavailable signals a failed read or write against the
	// durable store
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries per-field problems from booking validation
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, problem := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, problem))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
