// Package apierror defines the typed error taxonomy exposed to API callers.
// Every user-visible failure maps to one of the codes below so clients can
// distinguish failure kinds without parsing messages.
package apierror

import (
	"fmt"
	"net/http"
)

// Code classifies an API error.
type Code int

const (
	CodeInternal Code = iota
	CodeUnauthenticated
	CodeInvalidArgument
	CodeNotFound
	CodeConflict
	CodeUnavailable
)

// APIError is an error carrying an API error code and caller-facing message.
type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus maps the error code to an HTTP status code.
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewUnauthenticated creates an Unauthenticated error.
func NewUnauthenticated(message string) *APIError {
	return &APIError{Code: CodeUnauthenticated, Message: message}
}

// NewInvalidArgument creates an InvalidArgument error.
func NewInvalidArgument(message string) *APIError {
	return &APIError{Code: CodeInvalidArgument, Message: message}
}

// NewConferenceNotFound creates a NotFound error for a conference id.
func NewConferenceNotFound(conferenceID string) *APIError {
	return &APIError{Code: CodeNotFound, Message: fmt.Sprintf("no conference found with id: %s", conferenceID)}
}

// NewAlreadyRegistered creates a Conflict error for a duplicate registration.
func NewAlreadyRegistered() *APIError {
	return &APIError{Code: CodeConflict, Message: "you have already registered for this conference"}
}

// NewNoSeatsAvailable creates a Conflict error for an exhausted conference.
func NewNoSeatsAvailable() *APIError {
	return &APIError{Code: CodeConflict, Message: "there are no seats available"}
}

// NewUnavailable creates an Unavailable error for transient store failures.
func NewUnavailable(message string) *APIError {
	return &APIError{Code: CodeUnavailable, Message: message}
}
