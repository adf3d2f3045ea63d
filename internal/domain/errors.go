package domain

import "errors"

// Not-found errors cover both "absent" and "not owned by the caller" so the
// API never leaks whether another tenant's resource exists.
var (
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrUserNotFound       = errors.New("user not found")
)

var (
	ErrEmailExists         = errors.New("email already registered")
	ErrNoteExists          = errors.New("note already exists for this transcript")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
