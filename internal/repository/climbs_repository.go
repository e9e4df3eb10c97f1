package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/pkg/entity"
)

type ClimbsRepository struct {
	conn PgConnection
}

func NewClimbsRepo(conn PgConnection) *ClimbsRepository {
	return &ClimbsRepository{
		conn: conn,
	}
}

func (cr *ClimbsRepository) Create(ctx context.Context, climb *entity.Climb) (*entity.Climb, error) {
	if climb == nil {
		return nil, errors.New("climb is nil")
	}
	created := *climb
	row := querier(ctx, cr.conn).QueryRow(
		ctx,
		`INSERT INTO climbs (session_id, grade_id, description, attempts) VALUES ($1, $2, $3, $4) RETURNING id;`,
		climb.SessionID,
		climb.GradeID,
		climb.Description,
		climb.Attempts,
	)
	if err := row.Scan(&created.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				if pgErr.ConstraintName == "climbs_grade_id_fkey" {
					return nil, errorvalues.ErrGradeNotFound
				}
				return nil, errorvalues.ErrSessionNotFound
			// Check violation
			case "23514":
				return nil, errorvalues.ErrInvalidAttempts
			}
		}
		return nil, fmt.Errorf("creating climb db error: %w", err)
	}
	return &created, nil
}

func (cr *ClimbsRepository) GetOwnedByID(ctx context.Context, id uuid.UUID) (*entity.OwnedClimb, error) {
	var climb entity.OwnedClimb
	row := querier(ctx, cr.conn).QueryRow(
		ctx,
		`SELECT c.id, c.session_id, c.grade_id, c.description, c.attempts, s.user_id FROM climbs c JOIN climbing_sessions s ON s.id = c.session_id WHERE c.id = $1;`,
		id,
	)
	err := row.Scan(&climb.ID, &climb.SessionID, &climb.GradeID, &climb.Description, &climb.Attempts, &climb.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrClimbNotFound
		}
		return nil, fmt.Errorf("getting climb by id error: %w", err)
	}
	return &climb, nil
}

func (cr *ClimbsRepository) UpdateDescription(ctx context.Context, id uuid.UUID, description *string) error {
	ct, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE climbs SET description = $1 WHERE id = $2;`, description, id)
	if err != nil {
		return fmt.Errorf("updating climb description error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrClimbNotFound
	}
	return nil
}

func (cr *ClimbsRepository) UpdateGrade(ctx context.Context, id, gradeID uuid.UUID) error {
	ct, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE climbs SET grade_id = $1 WHERE id = $2;`, gradeID, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrGradeNotFound
		}
		return fmt.Errorf("updating climb grade error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrClimbNotFound
	}
	return nil
}

func (cr *ClimbsRepository) UpdateAttempts(ctx context.Context, id uuid.UUID, attempts int) error {
	ct, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE climbs SET attempts = $1 WHERE id = $2;`, attempts, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return errorvalues.ErrInvalidAttempts
		}
		return fmt.Errorf("updating climb attempts error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrClimbNotFound
	}
	return nil
}

func (cr *ClimbsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := querier(ctx, cr.conn).Exec(ctx, `DELETE FROM climbs WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("deleting climb error: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrClimbNotFound
	}
	return nil
}

func (cr *ClimbsRepository) ListByUserAndDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ClimbRow, error) {
	rows, err := querier(ctx, cr.conn).Query(
		ctx,
		`SELECT c.id, s.id, g.name, c.description, c.attempts FROM climbing_sessions s LEFT JOIN climbs c ON c.session_id = s.id LEFT JOIN grades g ON g.id = c.grade_id WHERE s.user_id = $1 AND s.date >= $2 AND s.date < $3;`,
		userID,
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("listing climbs for day error: %w", err)
	}
	defer rows.Close()
	result := make([]ClimbRow, 0)
	for rows.Next() {
		var (
			climbID  pgtype.UUID
			attempts pgtype.Int4
			row      ClimbRow
		)
		err = rows.Scan(&climbID, &row.SessionID, &row.GradeName, &row.Description, &attempts)
		if err != nil {
			return nil, fmt.Errorf("climb row parsing error: %w", err)
		}
		// Session without climbs
		if !climbID.Valid {
			continue
		}
		row.ID = uuid.UUID(climbID.Bytes)
		row.Attempts = int(attempts.Int32)
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected climb rows error: %w", err)
	}
	return result, nil
}

func (cr *ClimbsRepository) CountByDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.ClimbDay, error) {
	rows, err := querier(ctx, cr.conn).Query(
		ctx,
		`SELECT s.date, COUNT(c.id) FROM climbing_sessions s JOIN climbs c ON c.session_id = s.id WHERE s.user_id = $1 AND s.date >= $2 AND s.date < $3 GROUP BY s.date ORDER BY s.date;`,
		userID,
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("counting climbs by day error: %w", err)
	}
	defer rows.Close()
	result := make([]entity.ClimbDay, 0)
	for rows.Next() {
		var day entity.ClimbDay
		if err = rows.Scan(&day.Date, &day.Climbs); err != nil {
			return nil, fmt.Errorf("climb day row parsing error: %w", err)
		}
		result = append(result, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected climb day rows error: %w", err)
	}
	return result, nil
}
