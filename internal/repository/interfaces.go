package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/cragbook/pkg/entity"
)

type GradesRepositoryI interface {
	// Looks up grade row by its label
	FindByName(ctx context.Context, name string) (*entity.Grade, error)
	// Inserts grade row. Returns ErrGradeExists if the label was taken concurrently
	Create(ctx context.Context, name string) (*entity.Grade, error)
}

type SessionsRepositoryI interface {
	// Serializes session resolution for user and day until the surrounding transaction ends
	LockDay(ctx context.Context, userID uuid.UUID, day time.Time) error
	// Searches user's session with date in [from, to)
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.Session, error)
	// Creates session for user on day. Returns ErrSessionExists if one was created concurrently
	Create(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.Session, error)
}

type ClimbsRepositoryI interface {
	// Inserts new climb row. SessionID and GradeID are necessary
	Create(ctx context.Context, climb *entity.Climb) (*entity.Climb, error)
	// Returns climb along with the owner of its session
	GetOwnedByID(ctx context.Context, id uuid.UUID) (*entity.OwnedClimb, error)
	UpdateDescription(ctx context.Context, id uuid.UUID, description *string) error
	UpdateGrade(ctx context.Context, id, gradeID uuid.UUID) error
	UpdateAttempts(ctx context.Context, id uuid.UUID, attempts int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Lists climbs of user's sessions in [from, to), grade joined if present
	ListByUserAndDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ClimbRow, error)
	// Returns per-day climb counts of user's sessions in [from, to)
	CountByDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.ClimbDay, error)
}

type StatsRepositoryI interface {
	CountClimbs(ctx context.Context, userID uuid.UUID) (int, error)
	// Counts sessions having at least one climb
	CountSessions(ctx context.Context, userID uuid.UUID) (int, error)
	GradeTallies(ctx context.Context, userID uuid.UUID) ([]GradeTally, error)
}

type TxManagerI interface {
	// Runs fn in one transaction. Repositories called with the ctx given to fn join it
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ClimbRow is one left-joined row of a day listing. GradeName is nil when grade didn't join.
type ClimbRow struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	GradeName   *string
	Description *string
	Attempts    int
}

type GradeTally struct {
	Grade    string
	Climbs   int
	Attempts int
}

type DBConfig interface {
	ConnString() string
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
