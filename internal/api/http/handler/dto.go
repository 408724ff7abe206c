package handler

import (
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

const dateLayout = "2006-01-02"

type profileResponse struct {
	UserID       string   `json:"userId"`
	DisplayName  string   `json:"displayName"`
	MainEmail    string   `json:"mainEmail"`
	TeeShirtSize string   `json:"teeShirtSize"`
	Attending    []string `json:"attending"`
}

func toProfileResponse(p model.Profile) profileResponse {
	attending := p.Attending
	if attending == nil {
		attending = []string{}
	}
	return profileResponse{
		UserID:       p.UserID,
		DisplayName:  p.DisplayName,
		MainEmail:    p.MainEmail,
		TeeShirtSize: string(p.TeeShirtSize),
		Attending:    attending,
	}
}

type conferenceResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	OrganizerUserID      string   `json:"organizerUserId"`
	OrganizerDisplayName string   `json:"organizerDisplayName,omitempty"`
	Topics               []string `json:"topics"`
	City                 string   `json:"city"`
	StartDate            string   `json:"startDate,omitempty"`
	EndDate              string   `json:"endDate,omitempty"`
	Month                int      `json:"month"`
	MaxAttendees         int      `json:"maxAttendees"`
	SeatsAvailable       int      `json:"seatsAvailable"`
}

func toConferenceResponse(c model.Conference) conferenceResponse {
	resp := conferenceResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Description:          c.Description,
		OrganizerUserID:      c.OrganizerUserID,
		OrganizerDisplayName: c.OrganizerDisplayName,
		Topics:               c.Topics,
		City:                 c.City,
		Month:                c.Month,
		MaxAttendees:         c.MaxAttendees,
		SeatsAvailable:       c.SeatsAvailable,
	}
	if resp.Topics == nil {
		resp.Topics = []string{}
	}
	if c.StartDate != nil {
		resp.StartDate = c.StartDate.Format(dateLayout)
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format(dateLayout)
	}
	return resp
}

type conferencesResponse struct {
	Items []conferenceResponse `json:"items"`
}

func toConferencesResponse(conferences []model.Conference) conferencesResponse {
	items := make([]conferenceResponse, 0, len(conferences))
	for _, c := range conferences {
		items = append(items, toConferenceResponse(c))
	}
	return conferencesResponse{Items: items}
}
