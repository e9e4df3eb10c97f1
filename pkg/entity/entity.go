package entity

import (
	"time"

	"github.com/google/uuid"
)

type Grade struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Session groups every climb one user logged on one calendar day.
// Date is always the start of that day.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type Climb struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	GradeID     uuid.UUID `json:"grade_id"`
	Description *string   `json:"desc,omitempty"`
	Attempts    int       `json:"attempts"`
}

// OwnedClimb is a climb together with the user owning its session.
type OwnedClimb struct {
	Climb
	UserID uuid.UUID
}

// ClimbView is a climb joined with its session and grade label, as shown in a day listing.
type ClimbView struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	GradeName   string    `json:"grade"`
	Description string    `json:"desc"`
	Attempts    int       `json:"attempts"`
}

type ClimbDay struct {
	Date   time.Time `json:"date"`
	Climbs int       `json:"climbs"`
}

type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

type ClimbStats struct {
	TotalClimbs   int          `json:"total_climbs"`
	TotalAttempts int          `json:"total_attempts"`
	Sessions      int          `json:"sessions"`
	HardestGrade  string       `json:"hardest_grade,omitempty"`
	PerGrade      []GradeCount `json:"per_grade"`
}
