package errorvalues

import "errors"

// Validation
var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidGrade    = errors.New("unrecognized grade")
	ErrInvalidAttempts = errors.New("attempts must be between 1 and 99")
	ErrInvalidDate     = errors.New("date is missing or malformed")
)

// Authorization
var (
	ErrWrongOwner      = errors.New("record is owned by another user")
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrInvalidToken    = errors.New("invalid token")
)

var (
	ErrClimbNotFound   = errors.New("climb doesn't exist")
	ErrGradeNotFound   = errors.New("grade doesn't exist")
	ErrSessionNotFound = errors.New("climbing session doesn't exist")
)

// Conflicts are resolved inside the service layer and never reach callers
var (
	ErrGradeExists   = errors.New("grade with such name already exists")
	ErrSessionExists = errors.New("session for this user and day already exists")
)
