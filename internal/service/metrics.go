package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	entityGrade   = "grade"
	entitySession = "session"
)

var (
	climbsLogged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cragbook",
		Name:      "climbs_logged_total",
		Help:      "Climbs appended through LogClimb",
	})

	rowsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cragbook",
		Name:      "find_or_create_inserts_total",
		Help:      "Rows inserted by grade and session resolution",
	}, []string{"entity"})

	resolveConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cragbook",
		Name:      "find_or_create_conflicts_total",
		Help:      "Concurrent-creation conflicts resolved by re-reading",
	}, []string{"entity"})
)
