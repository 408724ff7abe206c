package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TsubasaK111/ConferenceCentral/internal/model"
)

var _ model.RegistrationStore = (*RegistrationRepository)(nil)

// RegistrationRepository applies the register/unregister state transitions.
// Each transition is one serializable transaction touching exactly two rows:
// the conference's seat counter and the profile's attendance list. Rows are
// locked in a fixed order (conference first, then profile) so concurrent
// transitions cannot deadlock each other.
type RegistrationRepository struct {
	db *Connection
}

func NewRegistrationRepository(db *Connection) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

const maxTxAttempts = 3

// inTx runs fn in a serializable transaction, retrying a bounded number of
// times on serialization failure or deadlock.
func (r *RegistrationRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return retriesExhausted(err)
}

// retriesExhausted marks a retryable failure that outlived its retry budget
// as transient so callers can report it as such.
func retriesExhausted(err error) error {
	return fmt.Errorf("transaction retries exhausted: %w: %w", model.ErrUnavailable, err)
}

// isRetryable reports whether the error is a serialization failure (40001)
// or deadlock (40P01), both of which are safe to retry from scratch.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

func lockConference(ctx context.Context, tx pgx.Tx, conferenceID string) (seatsAvailable int, err error) {
	err = tx.QueryRow(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seatsAvailable)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, model.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock conference row: %w", err)
	}
	return seatsAvailable, nil
}

// lockProfile locks the profile row. A missing profile is not ErrNotFound:
// callers ensure the profile exists before the transaction, so its absence
// here is an internal inconsistency, not a lookup miss.
func lockProfile(ctx context.Context, tx pgx.Tx, userID string) (attending []string, err error) {
	err = tx.QueryRow(ctx,
		`SELECT attending FROM profiles WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&attending)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("profile %s does not exist", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock profile row: %w", err)
	}
	return attending, nil
}

// Register consumes one seat of the conference for the user. The attendance
// append and the seat decrement commit together or not at all.
func (r *RegistrationRepository) Register(ctx context.Context, userID, conferenceID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		seatsAvailable, err := lockConference(ctx, tx, conferenceID)
		if err != nil {
			return err
		}

		attending, err := lockProfile(ctx, tx, userID)
		if err != nil {
			return err
		}

		if slices.Contains(attending, conferenceID) {
			return model.ErrAlreadyRegistered
		}
		if seatsAvailable <= 0 {
			return model.ErrNoSeatsAvailable
		}

		if _, err := tx.Exec(ctx,
			`UPDATE profiles SET attending = array_append(attending, $2), updated_at = NOW() WHERE user_id = $1`,
			userID, conferenceID,
		); err != nil {
			return fmt.Errorf("failed to append attendance: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE conferences SET seats_available = seats_available - 1 WHERE id = $1`,
			conferenceID,
		); err != nil {
			return fmt.Errorf("failed to decrement seats: %w", err)
		}

		return nil
	})
}

// Unregister releases the user's seat. Returns (false, nil) when the user
// was not attending; the conference must still exist.
func (r *RegistrationRepository) Unregister(ctx context.Context, userID, conferenceID string) (bool, error) {
	var unregistered bool
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		unregistered = false

		if _, err := lockConference(ctx, tx, conferenceID); err != nil {
			return err
		}

		attending, err := lockProfile(ctx, tx, userID)
		if err != nil {
			return err
		}

		if !slices.Contains(attending, conferenceID) {
			return nil
		}

		if _, err := tx.Exec(ctx,
			`UPDATE profiles SET attending = array_remove(attending, $2), updated_at = NOW() WHERE user_id = $1`,
			userID, conferenceID,
		); err != nil {
			return fmt.Errorf("failed to remove attendance: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE conferences SET seats_available = seats_available + 1 WHERE id = $1`,
			conferenceID,
		); err != nil {
			return fmt.Errorf("failed to increment seats: %w", err)
		}

		unregistered = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return unregistered, nil
}
