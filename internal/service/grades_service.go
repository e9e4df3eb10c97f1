package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/internal/repository"
	"github.com/limbo/cragbook/pkg/entity"
	"github.com/limbo/cragbook/pkg/grades"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	maxResolveAttempts  = 3
	gradeResolveTimeout = 5 * time.Second
)

type GradesService struct {
	repo   repository.GradesRepositoryI
	flight singleflight.Group
	logger *zap.Logger
}

func NewGradesService(gradesRepo repository.GradesRepositoryI, logger *zap.Logger) *GradesService {
	if gradesRepo == nil {
		log.Fatal("provided nil gradesRepo")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradesService{
		repo:   gradesRepo,
		logger: logger.Named("grades"),
	}
}

func (gs *GradesService) ListGrades() []string {
	return grades.Names()
}

// ResolveGrade must not be called with a transaction bound to ctx: the row it returns
// is shared between concurrent callers and has to be committed already.
func (gs *GradesService) ResolveGrade(ctx context.Context, name string) (*entity.Grade, error) {
	if err := validateGrade(name); err != nil {
		return nil, err
	}
	ch := gs.flight.DoChan(name, func() (any, error) {
		// The leader's cancellation must not fail the callers sharing its result
		resolveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), gradeResolveTimeout)
		defer cancel()
		return gs.resolve(resolveCtx, name)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		grade := *res.Val.(*entity.Grade)
		return &grade, nil
	}
}

func (gs *GradesService) resolve(ctx context.Context, name string) (*entity.Grade, error) {
	for range maxResolveAttempts {
		grade, err := gs.repo.FindByName(ctx, name)
		if err == nil {
			return grade, nil
		}
		if !errors.Is(err, errorvalues.ErrGradeNotFound) {
			gs.logger.Error("grade lookup failed", zap.String("grade", name), zap.Error(err))
			return nil, fmt.Errorf("grades repository error: %w", err)
		}
		grade, err = gs.repo.Create(ctx, name)
		if err == nil {
			rowsCreated.WithLabelValues(entityGrade).Inc()
			gs.logger.Info("grade created", zap.String("grade", name), zap.Stringer("grade_id", grade.ID))
			return grade, nil
		}
		if !errors.Is(err, errorvalues.ErrGradeExists) {
			gs.logger.Error("grade creation failed", zap.String("grade", name), zap.Error(err))
			return nil, fmt.Errorf("grades repository error: %w", err)
		}
		resolveConflicts.WithLabelValues(entityGrade).Inc()
		gs.logger.Debug("grade created concurrently, re-reading", zap.String("grade", name))
	}
	return nil, errors.New("grade resolution didn't settle after retries")
}
