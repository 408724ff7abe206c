package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (model.Profile, error) {
	query := `SELECT user_id, display_name, main_email, tee_shirt_size, attending, created_at, updated_at
			  FROM profiles WHERE user_id = $1`

	var profile model.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.DisplayName, &profile.MainEmail, &profile.TeeShirtSize,
		&profile.Attending, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]model.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `SELECT user_id, display_name, main_email, tee_shirt_size, attending, created_at, updated_at
			  FROM profiles WHERE user_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by user ids: %w", err)
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		var profile model.Profile
		err := rows.Scan(
			&profile.UserID, &profile.DisplayName, &profile.MainEmail, &profile.TeeShirtSize,
			&profile.Attending, &profile.CreatedAt, &profile.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Create inserts a profile. Two callers may race on first access for the
// same identity; the conflict clause makes the insert idempotent and both
// callers observe the same stored row.
func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query := `INSERT INTO profiles (user_id, display_name, main_email, tee_shirt_size, attending)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
			  RETURNING user_id, display_name, main_email, tee_shirt_size, attending, created_at, updated_at`

	var savedProfile model.Profile
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.DisplayName, profile.MainEmail, string(profile.TeeShirtSize), profile.Attending,
	).Scan(
		&savedProfile.UserID, &savedProfile.DisplayName, &savedProfile.MainEmail,
		&savedProfile.TeeShirtSize, &savedProfile.Attending, &savedProfile.CreatedAt, &savedProfile.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return savedProfile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query := `UPDATE profiles
			  SET display_name = $2, tee_shirt_size = $3, updated_at = NOW()
			  WHERE user_id = $1
			  RETURNING user_id, display_name, main_email, tee_shirt_size, attending, created_at, updated_at`

	var savedProfile model.Profile
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.DisplayName, string(profile.TeeShirtSize),
	).Scan(
		&savedProfile.UserID, &savedProfile.DisplayName, &savedProfile.MainEmail,
		&savedProfile.TeeShirtSize, &savedProfile.Attending, &savedProfile.CreatedAt, &savedProfile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return savedProfile, nil
}
