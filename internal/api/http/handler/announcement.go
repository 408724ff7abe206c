package handler

import (
	"context"
	"net/http"

	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
)

// AnnouncementService returns the current announcement text.
type AnnouncementService interface {
	Get(ctx context.Context) string
}

// Announcement handles the HTTP endpoint for the cached announcement.
type Announcement struct {
	service AnnouncementService
	logger  *logger.Logger
}

// NewAnnouncement creates a new Announcement handler.
func NewAnnouncement(service AnnouncementService, logger *logger.Logger) *Announcement {
	return &Announcement{service: service, logger: logger}
}

type announcementResponse struct {
	Announcement string `json:"announcement"`
}

// Get returns the cached announcement, empty when none is active.
func (h *Announcement) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, announcementResponse{
		Announcement: h.service.Get(r.Context()),
	})
}
