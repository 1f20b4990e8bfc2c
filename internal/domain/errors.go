package domain

import "errors"

var (
	ErrUnknownProperty  = errors.New("pricing: unknown property")
	ErrCapacityExceeded = errors.New("pricing: capacity exceeded")
	ErrInvalidDuration  = errors.New("pricing: stay must be at least 2 nights")
	ErrInvalidGroupSize = errors.New("pricing: group size must be positive")
)
