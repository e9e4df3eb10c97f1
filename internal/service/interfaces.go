//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cragbook/pkg/entity"
)

type LogClimbRequest struct {
	Date        time.Time `validate:"required"`
	Grade       string    `validate:"required,vgrade"`
	Attempts    *int      `validate:"omitempty,min=1,max=99"`
	Description *string   `validate:"omitempty,max=500"`
}

type GradeResolverI interface {
	// Returns the single grade row for a valid label, creating it on first use
	ResolveGrade(ctx context.Context, name string) (*entity.Grade, error)
}

type GradesServiceI interface {
	GradeResolverI
	// Lists the fixed grade scale in display order
	ListGrades() []string
}

type SessionResolverI interface {
	// Returns the user's session for the day of date, creating exactly one if absent
	ResolveSession(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Session, error)
}

type ClimbsServiceI interface {
	// Appends a new climb to the user's session of that day
	LogClimb(ctx context.Context, userID uuid.UUID, req *LogClimbRequest) (*entity.Climb, error)
	UpdateDescription(ctx context.Context, userID, climbID uuid.UUID, text string) error
	UpdateGrade(ctx context.Context, userID, climbID uuid.UUID, grade string) error
	UpdateAttempts(ctx context.Context, userID, climbID uuid.UUID, attempts int) error
	RemoveClimb(ctx context.Context, userID, climbID uuid.UUID) error
	// Lists the day's climbs ordered by grade, then description
	ListClimbsForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]entity.ClimbView, error)
	// Per-day climb counts for dates from..to inclusive
	ClimbDays(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.ClimbDay, error)
}

type StatsServiceI interface {
	TotalLoggedClimbs(ctx context.Context, userID uuid.UUID) (int, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*entity.ClimbStats, error)
}
