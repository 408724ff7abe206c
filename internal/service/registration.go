package service

import (
	"context"
	"errors"
	"time"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

const announcementRefreshTimeout = 5 * time.Second

type Registration struct {
	registrationStore model.RegistrationStore
	profiles          *Profile
	announcements     *Announcement
	logger            *logger.Logger
}

func NewRegistration(
	registrationStore model.RegistrationStore,
	profiles *Profile,
	announcements *Announcement,
	logger *logger.Logger,
) *Registration {
	return &Registration{
		registrationStore: registrationStore,
		profiles:          profiles,
		announcements:     announcements,
		logger:            logger,
	}
}

// Register books one seat of the conference for the caller. The profile is
// created on first access before the transactional transition runs.
func (s *Registration) Register(ctx context.Context, identity model.UserIdentity, conferenceID string) (bool, error) {
	if _, err := s.profiles.Get(ctx, identity); err != nil {
		return false, err
	}

	err := s.registrationStore.Register(ctx, identity.ID, conferenceID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return false, apierror.NewConferenceNotFound(conferenceID)
	case errors.Is(err, model.ErrAlreadyRegistered):
		return false, apierror.NewAlreadyRegistered()
	case errors.Is(err, model.ErrNoSeatsAvailable):
		return false, apierror.NewNoSeatsAvailable()
	case err != nil:
		return false, storeError("failed to register for conference", err)
	}

	s.refreshAnnouncementAsync()

	return true, nil
}

// Unregister releases the caller's seat. Not being registered is not an
// error; it reports success=false.
func (s *Registration) Unregister(ctx context.Context, identity model.UserIdentity, conferenceID string) (bool, error) {
	if _, err := s.profiles.Get(ctx, identity); err != nil {
		return false, err
	}

	unregistered, err := s.registrationStore.Unregister(ctx, identity.ID, conferenceID)
	if errors.Is(err, model.ErrNotFound) {
		return false, apierror.NewConferenceNotFound(conferenceID)
	}
	if err != nil {
		return false, storeError("failed to unregister from conference", err)
	}

	if unregistered {
		s.refreshAnnouncementAsync()
	}

	return unregistered, nil
}

// refreshAnnouncementAsync recomputes the near-capacity announcement in the
// background. The refresh is best-effort and detached from the request
// context so an abandoned request cannot cancel it.
func (s *Registration) refreshAnnouncementAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), announcementRefreshTimeout)
		defer cancel()

		if _, err := s.announcements.Refresh(ctx); err != nil {
			s.logger.Error("failed to refresh announcement", "error", err)
		}
	}()
}
