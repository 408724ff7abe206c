package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

var _ model.ConferenceStore = (*ConferenceRepository)(nil)

type ConferenceRepository struct {
	db *Connection
}

func NewConferenceRepository(db *Connection) *ConferenceRepository {
	return &ConferenceRepository{
		db: db,
	}
}

const conferenceColumns = `id, organizer_user_id, name, description, topics, city,
		start_date, end_date, month, max_attendees, seats_available, created_at`

func scanConference(row pgx.Row) (model.Conference, error) {
	var conference model.Conference
	err := row.Scan(
		&conference.ID, &conference.OrganizerUserID, &conference.Name, &conference.Description,
		&conference.Topics, &conference.City, &conference.StartDate, &conference.EndDate,
		&conference.Month, &conference.MaxAttendees, &conference.SeatsAvailable, &conference.CreatedAt,
	)
	return conference, err
}

func (r *ConferenceRepository) Create(ctx context.Context, conference model.Conference) (model.Conference, error) {
	query := `INSERT INTO conferences (id, organizer_user_id, name, description, topics, city,
			  start_date, end_date, month, max_attendees, seats_available)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING ` + conferenceColumns

	saved, err := scanConference(r.db.QueryRow(ctx, query,
		conference.ID, conference.OrganizerUserID, conference.Name, conference.Description,
		conference.Topics, conference.City, conference.StartDate, conference.EndDate,
		conference.Month, conference.MaxAttendees, conference.SeatsAvailable,
	))
	if err != nil {
		return model.Conference{}, fmt.Errorf("failed to create conference: %w", err)
	}

	return saved, nil
}

func (r *ConferenceRepository) GetByID(ctx context.Context, id string) (model.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`

	conference, err := scanConference(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Conference{}, model.ErrNotFound
		}
		return model.Conference{}, fmt.Errorf("failed to get conference by id: %w", err)
	}

	return conference, nil
}

func (r *ConferenceRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Conference, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get conferences by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]model.Conference, len(ids))
	for rows.Next() {
		conference, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		byID[conference.ID] = conference
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// preserve the order of the requested ids
	conferences := make([]model.Conference, 0, len(byID))
	for _, id := range ids {
		if conference, ok := byID[id]; ok {
			conferences = append(conferences, conference)
		}
	}

	return conferences, nil
}

func (r *ConferenceRepository) GetByOrganizer(ctx context.Context, organizerUserID string) ([]model.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences
			  WHERE organizer_user_id = $1 ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, organizerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conferences by organizer: %w", err)
	}
	defer rows.Close()

	return collectConferences(rows)
}

// Query runs a conjunction of validated filters. Columns and operators in
// the query come from the catalog's allow-lists, never from user input.
func (r *ConferenceRepository) Query(ctx context.Context, q model.ConferenceQuery) ([]model.Conference, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + conferenceColumns + ` FROM conferences`)

	args := make([]any, 0, len(q.Filters))
	for i, f := range q.Filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, f.Value)
		n := len(args)
		switch {
		case f.Column == "topics" && f.Op == "=":
			sb.WriteString(fmt.Sprintf("$%d = ANY(topics)", n))
		case f.Column == "topics":
			sb.WriteString(fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(topics) AS topic WHERE topic %s $%d)", f.Op, n))
		default:
			sb.WriteString(fmt.Sprintf("%s %s $%d", f.Column, f.Op, n))
		}
	}

	if q.OrderBy != "" && q.OrderBy != "name" {
		sb.WriteString(fmt.Sprintf(" ORDER BY %s ASC, name ASC", q.OrderBy))
	} else {
		sb.WriteString(" ORDER BY name ASC")
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conferences: %w", err)
	}
	defer rows.Close()

	return collectConferences(rows)
}

func (r *ConferenceRepository) FindNearCapacity(ctx context.Context, threshold int) ([]string, error) {
	query := `SELECT name FROM conferences
			  WHERE seats_available > 0 AND seats_available <= $1
			  ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to find near-capacity conferences: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

func collectConferences(rows pgx.Rows) ([]model.Conference, error) {
	var conferences []model.Conference
	for rows.Next() {
		conference, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, conference)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return conferences, nil
}
