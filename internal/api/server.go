package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/cragbook/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	requestTimeout    = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type Server struct {
	mx            *chi.Mux
	climbsService service.ClimbsServiceI
	gradesService service.GradesServiceI
	statsService  service.StatsServiceI
	jwtService    JWTServiceI
	logger        *zap.Logger
	location      *time.Location
	now           func() time.Time
}

type ServicesList struct {
	ClimbsService service.ClimbsServiceI
	GradesService service.GradesServiceI
	StatsService  service.StatsServiceI
	JwtService    JWTServiceI
	Logger        *zap.Logger
	// Location calendar dates are interpreted in; UTC when nil
	Location *time.Location
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil || servicesOptions.ClimbsService == nil || servicesOptions.GradesService == nil ||
		servicesOptions.StatsService == nil || servicesOptions.JwtService == nil {
		panic("on api server provided nil dependencies")
	}
	s := &Server{
		mx:            chi.NewMux(),
		climbsService: servicesOptions.ClimbsService,
		gradesService: servicesOptions.GradesService,
		statsService:  servicesOptions.StatsService,
		jwtService:    servicesOptions.JwtService,
		logger:        servicesOptions.Logger,
		location:      servicesOptions.Location,
		now:           time.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.location == nil {
		s.location = time.UTC
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)

	s.mx.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/grades", s.ListGrades)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Post("/grades", s.ResolveGrade)
			r.Post("/climbs", s.LogClimb)
			r.Get("/climbs", s.ListClimbs)
			r.Patch("/climbs/{id}/description", s.UpdateDescription)
			r.Patch("/climbs/{id}/grade", s.UpdateGrade)
			r.Patch("/climbs/{id}/attempts", s.UpdateAttempts)
			r.Delete("/climbs/{id}", s.RemoveClimb)
			r.Get("/calendar", s.ClimbDays)
			r.Get("/stats", s.UserStats)
			r.Get("/stats/total", s.TotalLoggedClimbs)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// HTTPServer wraps the router into a server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.logger.Named("http")),
	}
}
