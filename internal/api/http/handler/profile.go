package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// ProfileService defines profile read and save operations.
type ProfileService interface {
	Get(ctx context.Context, identity model.UserIdentity) (model.Profile, error)
	Save(ctx context.Context, identity model.UserIdentity, params model.SaveProfileParams) (model.Profile, error)
}

// Profile handles HTTP endpoints for the caller's profile.
type Profile struct {
	service        ProfileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(service ProfileService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type saveProfileRequest struct {
	DisplayName  string `json:"displayName"`
	TeeShirtSize string `json:"teeShirtSize"`
}

// Get returns the caller's profile, creating it on first access.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewUnauthenticated("authorization required"))
		return
	}

	profile, err := h.service.Get(r.Context(), identity)
	if err != nil {
		h.logger.Error("Profile handler: failed to get profile",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// Save updates the caller's profile fields and returns the result.
func (h *Profile) Save(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewUnauthenticated("authorization required"))
		return
	}

	var req saveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apierror.NewInvalidArgument("invalid request body"))
		return
	}

	profile, err := h.service.Save(r.Context(), identity, model.SaveProfileParams{
		DisplayName:  req.DisplayName,
		TeeShirtSize: req.TeeShirtSize,
	})
	if err != nil {
		h.logger.Error("Profile handler: failed to save profile",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Profile handler: profile saved",
		"user_id", identity.ID)

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}
