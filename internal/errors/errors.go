package errors

import "net/http"

// GenericMessage is returned for any failure outside the typed error set.
const GenericMessage = "Something went wrong, Please try again"

// APIError is a typed API error carrying the HTTP status it maps to.
// Handlers and services return these; the central error handler in the
// router renders them as `{message, status:false}`.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewBadRequest returns a 400 error for invalid caller input.
func NewBadRequest(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewUnauthorized returns a 401 error for a missing or invalid credential.
func NewUnauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Message: message}
}

// NewNotFound returns a 404 error for an absent entity or route.
func NewNotFound(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: message}
}

// NewInternal returns a 500 error for unexpected or storage-layer failures.
func NewInternal(message string) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Message: message}
}

// ErrorBody is the JSON envelope emitted for every failed request.
type ErrorBody struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}
