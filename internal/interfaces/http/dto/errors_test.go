package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"not found maps to 404", "NOT_FOUND", http.StatusNotFound},
		{"already exists maps to 409", "ALREADY_EXISTS", http.StatusConflict},
		{"conflict maps to 409", "CONFLICT", http.StatusConflict},
		{"concurrency conflict maps to 409", "CONCURRENCY_CONFLICT", http.StatusConflict},
		{"invalid state maps to 422", "INVALID_STATE", http.StatusUnprocessableEntity},
		{"insufficient funds maps to 422", "INSUFFICIENT_FUNDS", http.StatusUnprocessableEntity},
		{"has balance maps to 422", "HAS_BALANCE", http.StatusUnprocessableEntity},
		{"has references maps to 422", "HAS_REFERENCES", http.StatusUnprocessableEntity},
		{"invalid amount maps to 400", "INVALID_AMOUNT", http.StatusBadRequest},
		{"invalid name maps to 400", "INVALID_NAME", http.StatusBadRequest},
		{"invalid input maps to 400", ErrCodeInvalidInput, http.StatusBadRequest},
		{"unauthorized maps to 401", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"forbidden maps to 403", ErrCodeForbidden, http.StatusForbidden},
		{"unknown code falls back to 500", "SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID("NOT_FOUND", "resource not found", "req-123")

	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "resource not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "amount", Message: "Must be a positive amount"},
		{Field: "date", Message: "This field is required"},
	}

	resp := NewValidationErrorResponse("Request validation failed", "req-456", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
	assert.Equal(t, "req-456", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "amount", resp.Error.Details[0].Field)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PageSize)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
