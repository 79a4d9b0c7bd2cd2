package shift

import "errors"

// Shift domain errors
var (
	// ErrInvalidConfig covers end-not-after-start, negative grace period, and
	// non-positive expected hours. Rejected at configuration time; an invalid
	// config never reaches classification.
	ErrInvalidConfig = errors.New("invalid shift configuration")

	// ErrConfigNotFound means the employee has no shift configuration. The
	// classifier treats this as a configuration error, not a silent default.
	ErrConfigNotFound = errors.New("no shift configuration for employee")
)
