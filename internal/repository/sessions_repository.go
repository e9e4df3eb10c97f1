package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/pkg/entity"
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepo(conn PgConnection) *SessionsRepository {
	return &SessionsRepository{
		conn: conn,
	}
}

// DayLockKey names the advisory lock guarding session creation for user and day.
func DayLockKey(userID uuid.UUID, day time.Time) string {
	return "climbing_session:" + userID.String() + ":" + day.UTC().Format(time.RFC3339)
}

// LockDay only serializes inside a transaction: the lock is released on commit or rollback.
func (sr *SessionsRepository) LockDay(ctx context.Context, userID uuid.UUID, day time.Time) error {
	_, err := querier(ctx, sr.conn).Exec(
		ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`,
		DayLockKey(userID, day),
	)
	if err != nil {
		return fmt.Errorf("locking session day error: %w", err)
	}
	return nil
}

func (sr *SessionsRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.Session, error) {
	var session entity.Session
	row := querier(ctx, sr.conn).QueryRow(
		ctx,
		`SELECT id, user_id, date, created_at FROM climbing_sessions WHERE user_id = $1 AND date >= $2 AND date < $3 ORDER BY date LIMIT 1;`,
		userID,
		from,
		to,
	)
	if err := row.Scan(&session.ID, &session.UserID, &session.Date, &session.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, fmt.Errorf("searching session by day error: %w", err)
	}
	return &session, nil
}

func (sr *SessionsRepository) Create(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.Session, error) {
	var session entity.Session
	row := querier(ctx, sr.conn).QueryRow(
		ctx,
		`INSERT INTO climbing_sessions (user_id, date) VALUES ($1, $2) ON CONFLICT (user_id, date) DO NOTHING RETURNING id, user_id, date, created_at;`,
		userID,
		day,
	)
	if err := row.Scan(&session.ID, &session.UserID, &session.Date, &session.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return nil, errorvalues.ErrSessionExists
			}
		}
		return nil, fmt.Errorf("creating session db error: %w", err)
	}
	return &session, nil
}
