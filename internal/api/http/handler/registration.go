package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// RegistrationService defines seat registration operations.
type RegistrationService interface {
	Register(ctx context.Context, identity model.UserIdentity, conferenceID string) (bool, error)
	Unregister(ctx context.Context, identity model.UserIdentity, conferenceID string) (bool, error)
}

// Registration handles HTTP endpoints for conference seat registration.
type Registration struct {
	service        RegistrationService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRegistration creates a new Registration handler.
func NewRegistration(service RegistrationService, contextManager model.ContextManager, logger *logger.Logger) *Registration {
	return &Registration{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registrationResponse struct {
	Success bool `json:"success"`
}

// Register registers the caller for the conference in the URL.
func (h *Registration) Register(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewUnauthenticated("authorization required"))
		return
	}

	conferenceID := chi.URLParam(r, "conferenceID")

	success, err := h.service.Register(r.Context(), identity, conferenceID)
	if err != nil {
		h.logger.Error("Registration handler: failed to register",
			"user_id", identity.ID,
			"conference_id", conferenceID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Registration handler: registered",
		"user_id", identity.ID,
		"conference_id", conferenceID)

	writeJSON(w, http.StatusOK, registrationResponse{Success: success})
}

// Unregister removes the caller's registration for the conference in the URL.
func (h *Registration) Unregister(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewUnauthenticated("authorization required"))
		return
	}

	conferenceID := chi.URLParam(r, "conferenceID")

	success, err := h.service.Unregister(r.Context(), identity, conferenceID)
	if err != nil {
		h.logger.Error("Registration handler: failed to unregister",
			"user_id", identity.ID,
			"conference_id", conferenceID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registrationResponse{Success: success})
}
