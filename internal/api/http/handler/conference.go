package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// ConferenceService defines conference catalog operations.
type ConferenceService interface {
	Create(ctx context.Context, identity model.UserIdentity, params model.CreateConferenceParams) (model.Conference, error)
	Query(ctx context.Context, filters []model.Filter) ([]model.Conference, error)
	Created(ctx context.Context, identity model.UserIdentity) ([]model.Conference, error)
	ToAttend(ctx context.Context, identity model.UserIdentity) ([]model.Conference, error)
}

// Conference handles HTTP endpoints for the conference catalog.
type Conference struct {
	service        ConferenceService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewConference creates a new Conference handler.
func NewConference(service ConferenceService, contextManager model.ContextManager, logger *logger.Logger) *Conference {
	return &Conference{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createConferenceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	MaxAttendees int      `json:"maxAttendees"`
}

type filterRequest struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

type queryConferencesRequest struct {
	Filters []filterRequest `json:"filters"`
}

// Create creates a conference organized by the caller.
func (h *Conference) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewUnauthenticated("authorization required"))
		return
	}

	var req createConferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apierror.NewInvalidArgument("invalid request body"))
		return
	}

	conference, err := h.service.Create(r.Context(), identity, model.CreateConferenceParams{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		h.logger.Error("Conference handler: failed to create conference",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Conference handler: conference created",
		"user_id", identity.ID,
		"conference_id", conference.ID)

	writeJSON(w, http.StatusCreated, toConferenceResponse(conference))
}

// Query returns conferences matching the request filters.
func (h *Conference) Query(w http.ResponseWriter, r *http.Request) {
	var req queryConferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apierror.NewInvalidArgument("invalid request body"))
		return
	}

	filters := make([]model.Filter, 0, len(req.Filters))
	for _, f := range req.Filters {
		filters = append(filters, model.Filter{
			Field:    f.Field,
			Operator: f.Operator,
			Value:    f.Value,
		})
	}

	conferences, err := h.service.Query(r.Context(), filters)
	if err != nil {
		h.logger.Error("Conference handler: query failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toConferencesResponse(conferences))
}

// Created returns the conferences organized by the caller.
func (h *Conference) Created(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewUnauthenticated("authorization required"))
		return
	}

	conferences, err := h.service.Created(r.Context(), identity)
	if err != nil {
		h.logger.Error("Conference handler: failed to list created conferences",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toConferencesResponse(conferences))
}

// ToAttend returns the conferences the caller is registered for.
func (h *Conference) ToAttend(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		handleError(w, apierror.NewUnauthenticated("authorization required"))
		return
	}

	conferences, err := h.service.ToAttend(r.Context(), identity)
	if err != nil {
		h.logger.Error("Conference handler: failed to list attended conferences",
			"user_id", identity.ID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toConferencesResponse(conferences))
}
