package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when the bearer credential is missing or malformed.
	ErrUnauthenticated = errors.New("missing or malformed credential")
	// ErrInvalidCredential is returned when the credential is rejected by the verifier.
	ErrInvalidCredential = errors.New("credential rejected")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("insufficient role")
	// ErrParcelNotFound is returned when a referenced parcel is absent.
	ErrParcelNotFound = errors.New("parcel not found")
	// ErrRiderNotFound is returned when a referenced rider is absent.
	ErrRiderNotFound = errors.New("rider not found")
	// ErrUserNotFound is returned when a referenced user is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidStatus is returned when a delivery status value is unknown.
	ErrInvalidStatus = errors.New("unknown delivery status")
	// ErrInvalidTransition is returned when a lifecycle move would go backwards
	// or leave a terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrInvalidCredential):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVALID_CREDENTIAL")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrParcelNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PARCEL_NOT_FOUND")
	case errors.Is(err, ErrRiderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RIDER_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
