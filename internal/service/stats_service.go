package service

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/internal/repository"
	"github.com/limbo/cragbook/pkg/entity"
	"github.com/limbo/cragbook/pkg/grades"
)

// StatsService reads straight from storage on every call, so it always sees
// climbs written earlier in the same request.
type StatsService struct {
	repo repository.StatsRepositoryI
}

func NewStatsService(statsRepo repository.StatsRepositoryI) *StatsService {
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	return &StatsService{
		repo: statsRepo,
	}
}

func (ss *StatsService) TotalLoggedClimbs(ctx context.Context, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, errorvalues.ErrUnauthenticated
	}
	count, err := ss.repo.CountClimbs(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("stats repository error: %w", err)
	}
	return count, nil
}

func (ss *StatsService) UserStats(ctx context.Context, userID uuid.UUID) (*entity.ClimbStats, error) {
	if userID == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	tallies, err := ss.repo.GradeTallies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats repository error: %w", err)
	}
	sessions, err := ss.repo.CountSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats repository error: %w", err)
	}
	slices.SortFunc(tallies, func(a, b repository.GradeTally) int {
		return grades.Compare(a.Grade, b.Grade)
	})
	stats := entity.ClimbStats{
		Sessions: sessions,
		PerGrade: make([]entity.GradeCount, 0, len(tallies)),
	}
	for _, tally := range tallies {
		stats.TotalClimbs += tally.Climbs
		stats.TotalAttempts += tally.Attempts
		stats.PerGrade = append(stats.PerGrade, entity.GradeCount{Grade: tally.Grade, Count: tally.Climbs})
		if grades.IsValid(tally.Grade) {
			stats.HardestGrade = tally.Grade
		}
	}
	return &stats, nil
}
