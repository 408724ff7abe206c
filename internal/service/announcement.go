package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// AnnouncementCacheKey is the fixed cache key the announcement is stored under.
const AnnouncementCacheKey = "announcements"

// nearCapacityThreshold is the seat count at or below which a conference is
// considered nearly sold out.
const nearCapacityThreshold = 5

// Announcement maintains a derived, recomputable summary of near-capacity
// conferences in a shared cache. Concurrent refreshes race last-write-wins;
// every write is a full recomputation so the outcome is identical.
type Announcement struct {
	conferenceStore model.ConferenceStore
	cache           model.Cache
	logger          *logger.Logger
}

func NewAnnouncement(conferenceStore model.ConferenceStore, cache model.Cache, logger *logger.Logger) *Announcement {
	return &Announcement{
		conferenceStore: conferenceStore,
		cache:           cache,
		logger:          logger,
	}
}

// Refresh recomputes the announcement: when near-capacity conferences exist
// their summary replaces the cache entry, otherwise the entry is cleared.
// Returns the new announcement text, empty when cleared.
func (s *Announcement) Refresh(ctx context.Context) (string, error) {
	names, err := s.conferenceStore.FindNearCapacity(ctx, nearCapacityThreshold)
	if err != nil {
		return "", fmt.Errorf("failed to find near-capacity conferences: %w", err)
	}

	if len(names) == 0 {
		s.cache.Delete(ctx, AnnouncementCacheKey)
		return "", nil
	}

	announcement := fmt.Sprintf(
		"Last chance to attend! The following conferences are nearly sold out: %s",
		strings.Join(names, ", "),
	)
	s.cache.Set(ctx, AnnouncementCacheKey, announcement)

	return announcement, nil
}

// Get returns the cached announcement or the empty string. It never
// recomputes; refresh is driven by registration events and the periodic job.
func (s *Announcement) Get(ctx context.Context) string {
	announcement, ok := s.cache.Get(ctx, AnnouncementCacheKey)
	if !ok {
		return ""
	}
	return announcement
}
