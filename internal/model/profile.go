package model

import (
	"context"
	"fmt"
	"time"
)

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
	Update(ctx context.Context, profile Profile) (Profile, error)
}

// Profile represents a stored user profile. Attending holds the ordered
// conference ids the user is registered for; a conference id appears here
// iff a seat of that conference is consumed by this user.
type Profile struct {
	UserID       string
	DisplayName  string
	MainEmail    string
	TeeShirtSize TeeShirtSize
	Attending    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAttending reports whether the profile holds a seat for the conference.
func (p Profile) IsAttending(conferenceID string) bool {
	for _, id := range p.Attending {
		if id == conferenceID {
			return true
		}
	}
	return false
}

// SaveProfileParams contains the user-modifiable profile fields. Empty
// fields are left unchanged.
type SaveProfileParams struct {
	DisplayName  string
	TeeShirtSize string
}

// TeeShirtSize enumerates allowed tee shirt sizes.
type TeeShirtSize string

const (
	TeeShirtSizeNotSpecified TeeShirtSize = "NOT_SPECIFIED"
	TeeShirtSizeXSM          TeeShirtSize = "XS_M"
	TeeShirtSizeXSW          TeeShirtSize = "XS_W"
	TeeShirtSizeSM           TeeShirtSize = "S_M"
	TeeShirtSizeSW           TeeShirtSize = "S_W"
	TeeShirtSizeMM           TeeShirtSize = "M_M"
	TeeShirtSizeMW           TeeShirtSize = "M_W"
	TeeShirtSizeLM           TeeShirtSize = "L_M"
	TeeShirtSizeLW           TeeShirtSize = "L_W"
	TeeShirtSizeXLM          TeeShirtSize = "XL_M"
	TeeShirtSizeXLW          TeeShirtSize = "XL_W"
	TeeShirtSizeXXLM         TeeShirtSize = "XXL_M"
	TeeShirtSizeXXLW         TeeShirtSize = "XXL_W"
	TeeShirtSizeXXXLM        TeeShirtSize = "XXXL_M"
	TeeShirtSizeXXXLW        TeeShirtSize = "XXXL_W"
)

var teeShirtSizes = map[TeeShirtSize]struct{}{
	TeeShirtSizeNotSpecified: {},
	TeeShirtSizeXSM:          {},
	TeeShirtSizeXSW:          {},
	TeeShirtSizeSM:           {},
	TeeShirtSizeSW:           {},
	TeeShirtSizeMM:           {},
	TeeShirtSizeMW:           {},
	TeeShirtSizeLM:           {},
	TeeShirtSizeLW:           {},
	TeeShirtSizeXLM:          {},
	TeeShirtSizeXLW:          {},
	TeeShirtSizeXXLM:         {},
	TeeShirtSizeXXLW:         {},
	TeeShirtSizeXXXLM:        {},
	TeeShirtSizeXXXLW:        {},
}

// ParseTeeShirtSize validates a tee shirt size string against the enumeration.
func ParseTeeShirtSize(s string) (TeeShirtSize, error) {
	size := TeeShirtSize(s)
	if _, ok := teeShirtSizes[size]; !ok {
		return "", fmt.Errorf("invalid tee shirt size: %s", s)
	}
	return size, nil
}
