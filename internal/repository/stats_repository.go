package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(conn PgConnection) *StatsRepository {
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) CountClimbs(ctx context.Context, userID uuid.UUID) (int, error) {
	row := querier(ctx, sr.conn).QueryRow(
		ctx,
		`SELECT COUNT(*) FROM climbs c JOIN climbing_sessions s ON s.id = c.session_id WHERE s.user_id = $1;`,
		userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting climbs: %w", err)
	}
	return count, nil
}

func (sr *StatsRepository) CountSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	row := querier(ctx, sr.conn).QueryRow(
		ctx,
		`SELECT COUNT(DISTINCT c.session_id) FROM climbs c JOIN climbing_sessions s ON s.id = c.session_id WHERE s.user_id = $1;`,
		userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting sessions: %w", err)
	}
	return count, nil
}

func (sr *StatsRepository) GradeTallies(ctx context.Context, userID uuid.UUID) ([]GradeTally, error) {
	rows, err := querier(ctx, sr.conn).Query(
		ctx,
		`SELECT g.name, COUNT(*), COALESCE(SUM(c.attempts), 0) FROM climbs c JOIN climbing_sessions s ON s.id = c.session_id JOIN grades g ON g.id = c.grade_id WHERE s.user_id = $1 GROUP BY g.name;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting grade tallies error: %w", err)
	}
	defer rows.Close()
	result := make([]GradeTally, 0)
	for rows.Next() {
		var tally GradeTally
		if err = rows.Scan(&tally.Grade, &tally.Climbs, &tally.Attempts); err != nil {
			return nil, fmt.Errorf("grade tally row parsing error: %w", err)
		}
		result = append(result, tally)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected grade tally rows error: %w", err)
	}
	return result, nil
}
