package profile

import (
	"errors"

	"skillswap/internal/service/matching"
)

var (
	// ErrProfileNotFound is shared with the matching engine so lookups made
	// through the ProfileStore contract map to the same HTTP status.
	ErrProfileNotFound = matching.ErrProfileNotFound

	ErrInvalidProfileID    = errors.New("invalid profile id")
	ErrInvalidAvailability = errors.New("invalid availability slot")
)
