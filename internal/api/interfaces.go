package api

import (
	"github.com/google/uuid"
)

type JWTServiceI interface {
	// Returns the user the bearer token was issued for
	UserIDFromToken(tokenString string) (uuid.UUID, error)
}

type LogClimbRequest struct {
	// Calendar date, YYYY-MM-DD; today when empty
	Date        string  `json:"date"`
	Grade       string  `json:"grade"`
	Attempts    *int    `json:"attempts,omitempty"`
	Description *string `json:"desc,omitempty"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"desc"`
}

type UpdateGradeRequest struct {
	Grade string `json:"grade"`
}

type UpdateAttemptsRequest struct {
	Attempts int `json:"attempts"`
}

type ResolveGradeRequest struct {
	Name string `json:"name"`
}
