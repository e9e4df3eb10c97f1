package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cragbook/internal/error_values"
	"github.com/limbo/cragbook/internal/service"
	"github.com/limbo/cragbook/pkg/calendar"
	"github.com/limbo/cragbook/pkg/entity"
	"github.com/limbo/cragbook/pkg/httputil"
	"go.uber.org/zap"
)

type ListClimbsResponse struct {
	Date   string             `json:"date"`
	Climbs []entity.ClimbView `json:"climbs"`
}

type ClimbDaysResponse struct {
	From string            `json:"from"`
	To   string            `json:"to"`
	Days []entity.ClimbDay `json:"days"`
}

func (s *Server) ListGrades(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"grades": s.gradesService.ListGrades(),
	})
}

func (s *Server) ResolveGrade(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ResolveGradeRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Warn("resolve grade error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	grade, err := s.gradesService.ResolveGrade(ctx, req.Name)
	if err != nil {
		s.writeServiceError(w, logger, "resolve grade", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, grade)
}

func (s *Server) LogClimb(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log climb error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogClimbRequest
	if err = httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Warn("log climb error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date := calendar.StartOfDay(s.now().In(s.location))
	if req.Date != "" {
		date, err = calendar.ParseDate(req.Date, s.location)
		if err != nil {
			logger.Warn("log climb error: invalid date", zap.String("date", req.Date))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	climb, err := s.climbsService.LogClimb(ctx, uid, &service.LogClimbRequest{
		Date:        date,
		Grade:       req.Grade,
		Attempts:    req.Attempts,
		Description: req.Description,
	})
	if err != nil {
		s.writeServiceError(w, logger, "log climb", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, climb)
	logger.Info("climb logged", zap.Stringer("climb_id", climb.ID))
}

func (s *Server) ListClimbs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list climbs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, ok := s.dateQuery(w, r, "date")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	climbs, err := s.climbsService.ListClimbsForDate(ctx, uid, date)
	if err != nil {
		s.writeServiceError(w, logger, "list climbs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListClimbsResponse{
		Date:   date.Format(calendar.DateLayout),
		Climbs: climbs,
	})
}

func (s *Server) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	var req UpdateDescriptionRequest
	s.updateClimb(w, r, "update description", &req, func(ctx context.Context, uid, id uuid.UUID) error {
		return s.climbsService.UpdateDescription(ctx, uid, id, req.Description)
	})
}

func (s *Server) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	var req UpdateGradeRequest
	s.updateClimb(w, r, "update grade", &req, func(ctx context.Context, uid, id uuid.UUID) error {
		return s.climbsService.UpdateGrade(ctx, uid, id, req.Grade)
	})
}

func (s *Server) UpdateAttempts(w http.ResponseWriter, r *http.Request) {
	var req UpdateAttemptsRequest
	s.updateClimb(w, r, "update attempts", &req, func(ctx context.Context, uid, id uuid.UUID) error {
		return s.climbsService.UpdateAttempts(ctx, uid, id, req.Attempts)
	})
}

func (s *Server) RemoveClimb(w http.ResponseWriter, r *http.Request) {
	s.updateClimb(w, r, "remove climb", nil, func(ctx context.Context, uid, id uuid.UUID) error {
		return s.climbsService.RemoveClimb(ctx, uid, id)
	})
}

// updateClimb decodes body into req (when not nil) and applies op to the climb from the path.
func (s *Server) updateClimb(w http.ResponseWriter, r *http.Request, opName string, req any,
	op func(ctx context.Context, uid, id uuid.UUID) error) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(opName + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Warn(opName + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid climb id in path value", nil)
		return
	}
	if req != nil {
		if err = httputil.DecodeJSON(w, r, req); err != nil {
			logger.Warn(opName+" error: invalid body", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = op(ctx, uid, id); err != nil {
		s.writeServiceError(w, logger, opName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info(opName+" done", zap.Stringer("climb_id", id))
}

func (s *Server) ClimbDays(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("climb days error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, ok := s.dateQuery(w, r, "from")
	if !ok {
		return
	}
	to, ok := s.dateQuery(w, r, "to")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	days, err := s.climbsService.ClimbDays(ctx, uid, from, to)
	if err != nil {
		s.writeServiceError(w, logger, "climb days", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ClimbDaysResponse{
		From: from.Format(calendar.DateLayout),
		To:   to.Format(calendar.DateLayout),
		Days: days,
	})
}

func (s *Server) UserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("user stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.statsService.UserStats(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "user stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) TotalLoggedClimbs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("total climbs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	total, err := s.statsService.TotalLoggedClimbs(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "total climbs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"total": total})
}

// dateQuery parses a required YYYY-MM-DD query parameter, answering 400 itself on failure.
func (s *Server) dateQuery(w http.ResponseWriter, r *http.Request, key string) (date time.Time, ok bool) {
	value := r.URL.Query().Get(key)
	parsed, err := calendar.ParseDate(value, s.location)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Warn("invalid date query", zap.String(key, value))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+key+", expected YYYY-MM-DD", nil)
		return date, false
	}
	return parsed, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, logger *zap.Logger, opName string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Warn(opName+" error: validation", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", validationDetails(err))
	case errors.Is(err, errorvalues.ErrUnauthenticated), errors.Is(err, errorvalues.ErrInvalidToken):
		logger.Warn(opName + " error: unauthenticated")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Warn(opName + " error: climb has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "climb doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrClimbNotFound):
		logger.Warn(opName + " error: unexist climb")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "climb doesn't exist", nil)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error(opName+" error: timeout", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusGatewayTimeout, "request timed out", nil)
	default:
		logger.Error(opName+" error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// validationDetails keeps the field-level part of a validation error for the client.
func validationDetails(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidGrade):
		return errorvalues.ErrInvalidGrade
	case errors.Is(err, errorvalues.ErrInvalidAttempts):
		return errorvalues.ErrInvalidAttempts
	case errors.Is(err, errorvalues.ErrInvalidDate):
		return errorvalues.ErrInvalidDate
	}
	return nil
}
