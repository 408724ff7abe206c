package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TsubasaK111/ConferenceCentral/internal/apierror"
	"github.com/TsubasaK111/ConferenceCentral/internal/logger"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

// Defaults applied to missing conference fields on creation.
const defaultCity = "Default City"

var defaultTopics = []string{"Default", "Topic"}

// filterFields maps caller-facing filter field names to store columns.
var filterFields = map[string]string{
	"CITY":          "city",
	"TOPIC":         "topics",
	"MONTH":         "month",
	"MAX_ATTENDEES": "max_attendees",
}

// filterOperators maps caller-facing operator names to SQL operators.
var filterOperators = map[string]string{
	"EQ":   "=",
	"GT":   ">",
	"GTEQ": ">=",
	"LT":   "<",
	"LTEQ": "<=",
	"NE":   "!=",
}

// integerColumns holds the columns whose filter values must parse as ints.
var integerColumns = map[string]bool{
	"month":         true,
	"max_attendees": true,
}

type Conference struct {
	conferenceStore model.ConferenceStore
	profileStore    model.ProfileStore
	profiles        *Profile
	dispatcher      model.NotificationDispatcher
	logger          *logger.Logger
}

func NewConference(
	conferenceStore model.ConferenceStore,
	profileStore model.ProfileStore,
	profiles *Profile,
	dispatcher model.NotificationDispatcher,
	logger *logger.Logger,
) *Conference {
	return &Conference{
		conferenceStore: conferenceStore,
		profileStore:    profileStore,
		profiles:        profiles,
		dispatcher:      dispatcher,
		logger:          logger,
	}
}

// Create validates params, applies defaults, derives month and the initial
// seat counter, and persists the conference under the caller as organizer.
// The confirmation email is enqueued best-effort; its failure never fails
// the creation.
func (s *Conference) Create(ctx context.Context, identity model.UserIdentity, params model.CreateConferenceParams) (model.Conference, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return model.Conference{}, apierror.NewInvalidArgument("conference name is required")
	}
	if params.MaxAttendees < 0 {
		return model.Conference{}, apierror.NewInvalidArgument("maxAttendees cannot be negative")
	}

	conference := model.Conference{
		ID:              uuid.NewString(),
		Name:            params.Name,
		Description:     params.Description,
		OrganizerUserID: identity.ID,
		Topics:          params.Topics,
		City:            params.City,
		MaxAttendees:    params.MaxAttendees,
	}
	if conference.City == "" {
		conference.City = defaultCity
	}
	if len(conference.Topics) == 0 {
		conference.Topics = defaultTopics
	}
	if conference.MaxAttendees > 0 {
		conference.SeatsAvailable = conference.MaxAttendees
	}

	if params.StartDate != "" {
		startDate, err := parseDate(params.StartDate)
		if err != nil {
			return model.Conference{}, apierror.NewInvalidArgument(fmt.Sprintf("invalid startDate: %s", params.StartDate))
		}
		conference.StartDate = &startDate
		conference.Month = int(startDate.Month())
	}
	if params.EndDate != "" {
		endDate, err := parseDate(params.EndDate)
		if err != nil {
			return model.Conference{}, apierror.NewInvalidArgument(fmt.Sprintf("invalid endDate: %s", params.EndDate))
		}
		conference.EndDate = &endDate
	}

	// the organizer's profile must exist before the conference can
	// reference it
	if _, err := s.profiles.Get(ctx, identity); err != nil {
		return model.Conference{}, err
	}

	saved, err := s.conferenceStore.Create(ctx, conference)
	if err != nil {
		return model.Conference{}, storeError("failed to create conference", err)
	}

	notification := model.Notification{
		Email:   identity.Email,
		Subject: "You created a new conference!",
		Body:    fmt.Sprintf("You have created the following conference:\n%s", saved.Name),
	}
	if err := s.dispatcher.Enqueue(ctx, notification); err != nil {
		s.logger.Error("failed to enqueue confirmation email", "error", err, "conference_id", saved.ID)
	}

	return saved, nil
}

// Query validates the supplied filters and returns matching conferences,
// each augmented with the organizer's display name via one batch profile
// lookup.
func (s *Conference) Query(ctx context.Context, filters []model.Filter) ([]model.Conference, error) {
	query, err := buildConferenceQuery(filters)
	if err != nil {
		return nil, err
	}

	conferences, err := s.conferenceStore.Query(ctx, query)
	if err != nil {
		return nil, storeError("failed to query conferences", err)
	}

	if err := s.resolveOrganizerNames(ctx, conferences); err != nil {
		return nil, err
	}

	return conferences, nil
}

// Created returns the conferences organized by the caller.
func (s *Conference) Created(ctx context.Context, identity model.UserIdentity) ([]model.Conference, error) {
	conferences, err := s.conferenceStore.GetByOrganizer(ctx, identity.ID)
	if err != nil {
		return nil, storeError("failed to get conferences by organizer", err)
	}

	return conferences, nil
}

// ToAttend returns the conferences on the caller's attendance list, in
// registration order.
func (s *Conference) ToAttend(ctx context.Context, identity model.UserIdentity) ([]model.Conference, error) {
	profile, err := s.profiles.Get(ctx, identity)
	if err != nil {
		return nil, err
	}

	conferences, err := s.conferenceStore.GetByIDs(ctx, profile.Attending)
	if err != nil {
		return nil, storeError("failed to get attended conferences", err)
	}

	return conferences, nil
}

func (s *Conference) resolveOrganizerNames(ctx context.Context, conferences []model.Conference) error {
	if len(conferences) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	organizerIDs := make([]string, 0, len(conferences))
	for _, conference := range conferences {
		if !seen[conference.OrganizerUserID] {
			seen[conference.OrganizerUserID] = true
			organizerIDs = append(organizerIDs, conference.OrganizerUserID)
		}
	}

	profiles, err := s.profileStore.GetByUserIDs(ctx, organizerIDs)
	if err != nil {
		return storeError("failed to resolve organizer names", err)
	}

	names := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		names[profile.UserID] = profile.DisplayName
	}
	for i := range conferences {
		conferences[i].OrganizerDisplayName = names[conferences[i].OrganizerUserID]
	}

	return nil
}

// buildConferenceQuery parses and checks validity of user supplied filters.
// At most one field may carry a non-equality operator; that field becomes
// the primary sort column.
func buildConferenceQuery(filters []model.Filter) (model.ConferenceQuery, error) {
	query := model.ConferenceQuery{}
	inequalityColumn := ""

	for _, f := range filters {
		column, ok := filterFields[f.Field]
		if !ok {
			return model.ConferenceQuery{}, apierror.NewInvalidArgument(fmt.Sprintf("filter contains invalid field: %s", f.Field))
		}
		op, ok := filterOperators[f.Operator]
		if !ok {
			return model.ConferenceQuery{}, apierror.NewInvalidArgument(fmt.Sprintf("filter contains invalid operator: %s", f.Operator))
		}

		if op != "=" {
			if inequalityColumn != "" && inequalityColumn != column {
				return model.ConferenceQuery{}, apierror.NewInvalidArgument("inequality filter is allowed on only one field")
			}
			inequalityColumn = column
		}

		var value any = f.Value
		if integerColumns[column] {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return model.ConferenceQuery{}, apierror.NewInvalidArgument(fmt.Sprintf("filter value for %s must be an integer: %s", f.Field, f.Value))
			}
			value = n
		}

		query.Filters = append(query.Filters, model.ConferenceFilter{Column: column, Op: op, Value: value})
	}

	query.OrderBy = inequalityColumn
	return query, nil
}

// parseDate parses the leading YYYY-MM-DD of a date string, tolerating a
// trailing time component.
func parseDate(value string) (time.Time, error) {
	if len(value) > 10 {
		value = value[:10]
	}
	return time.Parse("2006-01-02", value)
}
