package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/internal/repository"
	"github.com/limbo/cragbook/pkg/calendar"
	"github.com/limbo/cragbook/pkg/entity"
	"go.uber.org/zap"
)

type SessionsService struct {
	repo     repository.SessionsRepositoryI
	tx       repository.TxManagerI
	location *time.Location
	logger   *zap.Logger
}

// NewSessionsService cuts calendar days in location, UTC when nil.
func NewSessionsService(sessionsRepo repository.SessionsRepositoryI, txManager repository.TxManagerI, location *time.Location, logger *zap.Logger) *SessionsService {
	if sessionsRepo == nil || txManager == nil {
		log.Fatal("on sessions service provided nil dependencies")
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionsService{
		repo:     sessionsRepo,
		tx:       txManager,
		location: location,
		logger:   logger.Named("sessions"),
	}
}

// ResolveSession joins the caller's transaction when ctx carries one, so a session
// created for a climb that then fails to insert is rolled back with it.
func (ss *SessionsService) ResolveSession(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Session, error) {
	if userID == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if date.IsZero() {
		return nil, errors.Join(errorvalues.ErrValidation, errorvalues.ErrInvalidDate)
	}
	from, to := calendar.DayWindow(date.In(ss.location))
	var session *entity.Session
	err := ss.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ss.repo.LockDay(ctx, userID, from); err != nil {
			return err
		}
		for range maxResolveAttempts {
			found, err := ss.repo.FindByUserAndDay(ctx, userID, from, to)
			if err == nil {
				session = found
				return nil
			}
			if !errors.Is(err, errorvalues.ErrSessionNotFound) {
				return err
			}
			created, err := ss.repo.Create(ctx, userID, from)
			if err == nil {
				rowsCreated.WithLabelValues(entitySession).Inc()
				session = created
				return nil
			}
			if !errors.Is(err, errorvalues.ErrSessionExists) {
				return err
			}
			resolveConflicts.WithLabelValues(entitySession).Inc()
			ss.logger.Debug("session created concurrently, re-reading",
				zap.Stringer("uid", userID), zap.Time("day", from))
		}
		return errors.New("session resolution didn't settle after retries")
	})
	if err != nil {
		ss.logger.Error("session resolution failed", zap.Stringer("uid", userID), zap.Time("day", from), zap.Error(err))
		return nil, fmt.Errorf("sessions repository error: %w", err)
	}
	return session, nil
}
