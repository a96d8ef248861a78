package auth

import "errors"

var (
	ErrMissingToken  = errors.New("authorization bearer token required")
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)
