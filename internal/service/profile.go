package service

import (
	"context"
	"errors"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

type Profile struct {
	profileStore model.ProfileStore
	logger       *logger.Logger
}

func NewProfile(profileStore model.ProfileStore, logger *logger.Logger) *Profile {
	return &Profile{
		profileStore: profileStore,
		logger:       logger,
	}
}

// Get returns the caller's profile, creating it on first access from the
// identity's display name and email.
func (s *Profile) Get(ctx context.Context, identity model.UserIdentity) (model.Profile, error) {
	profile, err := s.profileStore.GetByUserID(ctx, identity.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, storeError("failed to get profile", err)
	}

	profile = model.Profile{
		UserID:       identity.ID,
		DisplayName:  identity.DisplayName,
		MainEmail:    identity.Email,
		TeeShirtSize: model.TeeShirtSizeNotSpecified,
	}

	created, err := s.profileStore.Create(ctx, profile)
	if err != nil {
		return model.Profile{}, storeError("failed to create profile", err)
	}

	s.logger.Info("created profile on first access", "user_id", identity.ID)

	return created, nil
}

// Save updates the user-modifiable fields of the caller's profile. Empty
// params leave the corresponding field unchanged.
func (s *Profile) Save(ctx context.Context, identity model.UserIdentity, params model.SaveProfileParams) (model.Profile, error) {
	profile, err := s.Get(ctx, identity)
	if err != nil {
		return model.Profile{}, err
	}

	if params.DisplayName != "" {
		profile.DisplayName = params.DisplayName
	}
	if params.TeeShirtSize != "" {
		size, err := model.ParseTeeShirtSize(params.TeeShirtSize)
		if err != nil {
			return model.Profile{}, apierror.NewInvalidArgument(err.Error())
		}
		profile.TeeShirtSize = size
	}

	saved, err := s.profileStore.Update(ctx, profile)
	if err != nil {
		return model.Profile{}, storeError("failed to update profile", err)
	}

	return saved, nil
}
