package domain

import "errors"

// Sentinel errors returned by services. The HTTP layer maps each to a
// stable status code in one place (internal/api/error_handler.go); nothing
// below the transport ever sees a status code.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrShiftNotFound      = errors.New("shift not found")
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrUnknownShiftOwner  = errors.New("shift owner does not exist")
	ErrEmptyContent       = errors.New("message content cannot be empty")
	ErrEmptyFilename      = errors.New("filename cannot be empty")
)
