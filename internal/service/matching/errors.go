package matching

import "errors"

var (
	// Store contract errors
	ErrProfileNotFound = errors.New("profile not found")

	// Request errors
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrUnauthorized      = errors.New("unauthorized")
)
