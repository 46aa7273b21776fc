package response

import (
	"net/http"
	"testing"
)

func TestSuccess(t *testing.T) {
	resp := Success(map[string]string{"key": "value"})

	if !resp.Success {
		t.Error("Success should be true")
	}
	if resp.Data == nil {
		t.Error("Data should not be nil")
	}
	if resp.Error != nil {
		t.Error("Error should be nil")
	}
}

func TestError(t *testing.T) {
	resp := Error(ErrCodeConflict, "Time conflict with another event.")

	if resp.Success {
		t.Error("Success should be false")
	}
	if resp.Error == nil {
		t.Fatal("Error should not be nil")
	}
	if resp.Error.Code != ErrCodeConflict {
		t.Errorf("Code = %q, want %q", resp.Error.Code, ErrCodeConflict)
	}
	if resp.Error.Message != "Time conflict with another event." {
		t.Errorf("Message = %q", resp.Error.Message)
	}
}

func TestValidationFailed(t *testing.T) {
	details := map[string]string{"room_id": "room_id is required for room bookings"}
	resp := ValidationFailed(details)

	if resp.Success {
		t.Error("Success should be false")
	}
	if resp.Error.Code != ErrCodeValidationFailed {
		t.Errorf("Code = %q, want %q", resp.Error.Code, ErrCodeValidationFailed)
	}
	if resp.Error.Details["room_id"] == "" {
		t.Error("Details should carry the field problem")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeInvalidQuery, http.StatusBadRequest},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeStoreUnavailable, http.StatusServiceUnavailable},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := GetHTTPStatus(tt.code); got != tt.status {
				t.Errorf("GetHTTPStatus(%q) = %d, want %d", tt.code, got, tt.status)
			}
		})
	}
}

func TestDefaultMessages(t *testing.T) {
	if NotFound("").Error.Message == "" {
		t.Error("NotFound should fill a default message")
	}
	if Conflict("").Error.Message == "" {
		t.Error("Conflict should fill a default message")
	}
	if StoreUnavailable("").Error.Message == "" {
		t.Error("StoreUnavailable should fill a default message")
	}
	if InvalidQuery("").Error.Message == "" {
		t.Error("InvalidQuery should fill a default message")
	}
}
