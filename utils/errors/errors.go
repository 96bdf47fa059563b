package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// APIError represents a custom error type for API responses
type APIError struct {
	Code    string `json:"-"`
	Message string `json:"error"`
	Status  int    `json:"-"`
	Details string `json:"details,omitempty"`
}

// Error returns the error message
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, status int, details ...string) *APIError {
	err := &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var (
	ErrInvalidCoordinates = NewAPIError("INVALID_COORDINATES", "Invalid coordinates", http.StatusBadRequest)
	ErrInternal           = NewAPIError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
)

// ErrUpstreamUnavailable marks a failed call to a geocoding or POI provider.
// It never reaches the HTTP caller; services wrap it and the finder falls back.
var ErrUpstreamUnavailable = stderrors.New("upstream unavailable")

// Upstream wraps cause as an ErrUpstreamUnavailable for the named provider.
func Upstream(provider string, cause error) error {
	return fmt.Errorf("%s: %w: %v", provider, ErrUpstreamUnavailable, cause)
}

func Wrap(err error, code, message string, status int) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return NewAPIError(code, message, status, err.Error())
}
