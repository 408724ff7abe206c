package model

import (
	"context"
	"time"
)

// ConferenceStore defines persistence operations for conferences.
type ConferenceStore interface {
	Create(ctx context.Context, conference Conference) (Conference, error)
	GetByID(ctx context.Context, id string) (Conference, error)
	// GetByIDs returns the conferences for the given ids, preserving the
	// order of ids. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]Conference, error)
	GetByOrganizer(ctx context.Context, organizerUserID string) ([]Conference, error)
	Query(ctx context.Context, query ConferenceQuery) ([]Conference, error)
	// FindNearCapacity returns the names of conferences with
	// 0 < seatsAvailable <= threshold, ordered by name.
	FindNearCapacity(ctx context.Context, threshold int) ([]string, error)
}

// RegistrationStore performs the atomic register/unregister state
// transitions across a profile and a conference.
type RegistrationStore interface {
	// Register appends the conference to the profile's attendance list and
	// decrements the seat counter in one transaction. Returns ErrNotFound,
	// ErrAlreadyRegistered or ErrNoSeatsAvailable without mutating state.
	Register(ctx context.Context, userID, conferenceID string) error
	// Unregister removes the conference from the attendance list and
	// increments the seat counter. Returns (false, nil) when the user was
	// not attending.
	Unregister(ctx context.Context, userID, conferenceID string) (bool, error)
}

// Conference represents a stored conference entity. SeatsAvailable is the
// sole capacity counter and always satisfies 0 <= SeatsAvailable <= MaxAttendees.
type Conference struct {
	ID              string
	Name            string
	Description     string
	OrganizerUserID string
	Topics          []string
	City            string
	StartDate       *time.Time
	EndDate         *time.Time
	Month           int
	MaxAttendees    int
	SeatsAvailable  int
	CreatedAt       time.Time

	// OrganizerDisplayName is resolved from the organizer's profile on
	// query paths; it is not persisted with the conference.
	OrganizerDisplayName string
}

// CreateConferenceParams contains parameters to create a conference.
// Dates are supplied as YYYY-MM-DD strings.
type CreateConferenceParams struct {
	Name         string
	Description  string
	Topics       []string
	City         string
	StartDate    string
	EndDate      string
	MaxAttendees int
}

// Filter is one (field, operator, value) query predicate as supplied by
// the caller, e.g. {"MAX_ATTENDEES", "GT", "10"}.
type Filter struct {
	Field    string
	Operator string
	Value    string
}

// ConferenceFilter is a validated predicate ready for the store: Column and
// Op are SQL column and operator names produced by the catalog's allow-lists.
type ConferenceFilter struct {
	Column string
	Op     string
	Value  any
}

// ConferenceQuery is a conjunction of validated filters. OrderBy names the
// inequality column when one is present; results are always ordered by the
// conference name after it.
type ConferenceQuery struct {
	Filters []ConferenceFilter
	OrderBy string
}
