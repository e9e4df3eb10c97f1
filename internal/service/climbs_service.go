package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/internal/repository"
	"github.com/limbo/cragbook/pkg/calendar"
	"github.com/limbo/cragbook/pkg/entity"
	"github.com/limbo/cragbook/pkg/grades"
	"go.uber.org/zap"
)

const (
	defaultAttempts  = 1
	maxClimbDaysSpan = 366
)

type ClimbsService struct {
	climbsRepo repository.ClimbsRepositoryI
	grades     GradeResolverI
	sessions   SessionResolverI
	tx         repository.TxManagerI
	location   *time.Location
	logger     *zap.Logger
}

func NewClimbsService(
	climbsRepo repository.ClimbsRepositoryI,
	gradeResolver GradeResolverI,
	sessionResolver SessionResolverI,
	txManager repository.TxManagerI,
	location *time.Location,
	logger *zap.Logger,
) *ClimbsService {
	if climbsRepo == nil || gradeResolver == nil || sessionResolver == nil || txManager == nil {
		log.Fatal("on climbs service provided nil dependencies")
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClimbsService{
		climbsRepo: climbsRepo,
		grades:     gradeResolver,
		sessions:   sessionResolver,
		tx:         txManager,
		location:   location,
		logger:     logger.Named("climbs"),
	}
}

// LogClimb always appends a new row: repeated climbs at one grade are separate entries.
// Retrying a call that timed out may therefore log the climb twice.
func (cs *ClimbsService) LogClimb(ctx context.Context, userID uuid.UUID, req *LogClimbRequest) (*entity.Climb, error) {
	if userID == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if req == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("empty request"))
	}
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	attempts := defaultAttempts
	if req.Attempts != nil {
		attempts = *req.Attempts
	}
	// Grade rows are shared by every user and must be durable before anything references them
	grade, err := cs.grades.ResolveGrade(ctx, req.Grade)
	if err != nil {
		return nil, err
	}
	var climb *entity.Climb
	err = cs.tx.WithinTx(ctx, func(ctx context.Context) error {
		session, err := cs.sessions.ResolveSession(ctx, userID, req.Date)
		if err != nil {
			return err
		}
		climb, err = cs.climbsRepo.Create(ctx, &entity.Climb{
			SessionID:   session.ID,
			GradeID:     grade.ID,
			Description: normalizeDescription(req.Description),
			Attempts:    attempts,
		})
		return err
	})
	if err != nil {
		cs.logger.Error("logging climb failed", zap.Stringer("uid", userID), zap.String("grade", req.Grade), zap.Error(err))
		return nil, fmt.Errorf("climbs repository error: %w", err)
	}
	climbsLogged.Inc()
	cs.logger.Debug("climb logged", zap.Stringer("uid", userID), zap.Stringer("climb_id", climb.ID))
	return climb, nil
}

func (cs *ClimbsService) UpdateDescription(ctx context.Context, userID, climbID uuid.UUID, text string) error {
	if err := validateDescription(text); err != nil {
		return err
	}
	if _, err := cs.ownedClimb(ctx, userID, climbID); err != nil {
		return err
	}
	err := cs.climbsRepo.UpdateDescription(ctx, climbID, normalizeDescription(&text))
	return wrapClimbsRepoError(err)
}

// UpdateGrade rewrites the grade reference in place; the climb keeps its id and session.
func (cs *ClimbsService) UpdateGrade(ctx context.Context, userID, climbID uuid.UUID, grade string) error {
	if err := validateGrade(grade); err != nil {
		return err
	}
	if _, err := cs.ownedClimb(ctx, userID, climbID); err != nil {
		return err
	}
	resolved, err := cs.grades.ResolveGrade(ctx, grade)
	if err != nil {
		return err
	}
	err = cs.climbsRepo.UpdateGrade(ctx, climbID, resolved.ID)
	return wrapClimbsRepoError(err)
}

func (cs *ClimbsService) UpdateAttempts(ctx context.Context, userID, climbID uuid.UUID, attempts int) error {
	if err := validateAttempts(attempts); err != nil {
		return err
	}
	if _, err := cs.ownedClimb(ctx, userID, climbID); err != nil {
		return err
	}
	err := cs.climbsRepo.UpdateAttempts(ctx, climbID, attempts)
	return wrapClimbsRepoError(err)
}

// RemoveClimb deletes the climb only; its session stays even when left empty.
func (cs *ClimbsService) RemoveClimb(ctx context.Context, userID, climbID uuid.UUID) error {
	if _, err := cs.ownedClimb(ctx, userID, climbID); err != nil {
		return err
	}
	err := cs.climbsRepo.Delete(ctx, climbID)
	return wrapClimbsRepoError(err)
}

func (cs *ClimbsService) ListClimbsForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]entity.ClimbView, error) {
	if userID == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if date.IsZero() {
		return nil, errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidDate)
	}
	from, to := calendar.DayWindow(date.In(cs.location))
	rows, err := cs.climbsRepo.ListByUserAndDay(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("climbs repository error: %w", err)
	}
	result := make([]entity.ClimbView, 0, len(rows))
	for _, row := range rows {
		// Climb whose grade didn't join
		if row.GradeName == nil || *row.GradeName == "" {
			cs.logger.Warn("skipping climb without grade", zap.Stringer("climb_id", row.ID))
			continue
		}
		view := entity.ClimbView{
			ID:        row.ID,
			SessionID: row.SessionID,
			GradeName: *row.GradeName,
			Attempts:  row.Attempts,
		}
		if row.Description != nil {
			view.Description = *row.Description
		}
		result = append(result, view)
	}
	SortClimbViews(result)
	return result, nil
}

func (cs *ClimbsService) ClimbDays(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.ClimbDay, error) {
	if userID == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidDate)
	}
	start := calendar.StartOfDay(from.In(cs.location))
	_, end := calendar.DayWindow(to.In(cs.location))
	if end.Sub(start) > maxClimbDaysSpan*24*time.Hour {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("date range is longer than a year"))
	}
	days, err := cs.climbsRepo.CountByDay(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("climbs repository error: %w", err)
	}
	return days, nil
}

// SortClimbViews orders climbs by grade scale position, then by description with empty first.
func SortClimbViews(views []entity.ClimbView) {
	slices.SortStableFunc(views, func(a, b entity.ClimbView) int {
		if c := grades.Compare(a.GradeName, b.GradeName); c != 0 {
			return c
		}
		return strings.Compare(a.Description, b.Description)
	})
}

func (cs *ClimbsService) ownedClimb(ctx context.Context, userID, climbID uuid.UUID) (*entity.OwnedClimb, error) {
	if userID == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	climb, err := cs.climbsRepo.GetOwnedByID(ctx, climbID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrClimbNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("climbs repository error: %w", err)
	}
	if climb.UserID != userID {
		cs.logger.Warn("climb access by non-owner", zap.Stringer("uid", userID), zap.Stringer("climb_id", climbID))
		return nil, errorvalues.ErrWrongOwner
	}
	return climb, nil
}

func wrapClimbsRepoError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, errorvalues.ErrClimbNotFound),
		errors.Is(err, errorvalues.ErrGradeNotFound),
		errors.Is(err, errorvalues.ErrInvalidAttempts):
		return err
	}
	return fmt.Errorf("climbs repository error: %w", err)
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
