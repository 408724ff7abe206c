package apierror

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want int
	}{
		{"unauthenticated", NewUnauthenticated("authorization required"), http.StatusUnauthorized},
		{"invalid argument", NewInvalidArgument("bad filter"), http.StatusBadRequest},
		{"not found", NewConferenceNotFound("abc"), http.StatusNotFound},
		{"conflict duplicate", NewAlreadyRegistered(), http.StatusConflict},
		{"conflict no seats", NewNoSeatsAvailable(), http.StatusConflict},
		{"unavailable", NewUnavailable("store timeout"), http.StatusServiceUnavailable},
		{"internal", &APIError{Code: CodeInternal, Message: "boom"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestNewConferenceNotFound_Message(t *testing.T) {
	err := NewConferenceNotFound("conf-123")
	assert.Equal(t, "no conference found with id: conf-123", err.Message)
}
