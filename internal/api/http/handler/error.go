package handler

import (
	"errors"
	"net/http"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

func handleError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeError(w, apiErr.HTTPStatus(), apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
