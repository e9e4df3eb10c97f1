package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/pkg/entity"
)

type GradesRepository struct {
	conn PgConnection
}

func NewGradesRepo(conn PgConnection) *GradesRepository {
	return &GradesRepository{
		conn: conn,
	}
}

func (gr *GradesRepository) FindByName(ctx context.Context, name string) (*entity.Grade, error) {
	var grade entity.Grade
	row := querier(ctx, gr.conn).QueryRow(ctx, `SELECT id, name FROM grades WHERE name = $1;`, name)
	if err := row.Scan(&grade.ID, &grade.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGradeNotFound
		}
		return nil, fmt.Errorf("searching grade by name error: %w", err)
	}
	return &grade, nil
}

func (gr *GradesRepository) Create(ctx context.Context, name string) (*entity.Grade, error) {
	var grade entity.Grade
	row := querier(ctx, gr.conn).QueryRow(
		ctx,
		`INSERT INTO grades (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id, name;`,
		name,
	)
	if err := row.Scan(&grade.ID, &grade.Name); err != nil {
		// Nothing returned means the row already exists
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGradeExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return nil, errorvalues.ErrGradeExists
			}
		}
		return nil, fmt.Errorf("creating grade db error: %w", err)
	}
	return &grade, nil
}
