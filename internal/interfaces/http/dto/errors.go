package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Field-level validation codes map to 400, missing resources to 404,
// duplicates and write races to 409, business rule rejections to 422.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	// Validation errors -> 400 Bad Request
	ErrCodeInvalidInput:   http.StatusBadRequest,
	"INVALID_NAME":        http.StatusBadRequest,
	"INVALID_AMOUNT":      http.StatusBadRequest,
	"INVALID_DATE":        http.StatusBadRequest,
	"INVALID_TYPE":        http.StatusBadRequest,
	"INVALID_DESCRIPTION": http.StatusBadRequest,
	"INVALID_CODE":        http.StatusBadRequest,
	"INVALID_SAFE":        http.StatusBadRequest,
	"INVALID_UNIT":        http.StatusBadRequest,
	"INVALID_CUSTOMER":    http.StatusBadRequest,
	"INVALID_CONTRACT":    http.StatusBadRequest,
	"INVALID_BROKER":      http.StatusBadRequest,
	"INVALID_PARTNER":     http.StatusBadRequest,

	// Resource errors
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONFLICT":             http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE":      http.StatusUnprocessableEntity,
	"INSUFFICIENT_FUNDS": http.StatusUnprocessableEntity,
	"HAS_BALANCE":        http.StatusUnprocessableEntity,
	"HAS_REFERENCES":     http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
