package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out errors
	ErrAlreadyCheckedIn = errors.New("an open session already exists for this day, check out first")
	ErrNoOpenSession    = errors.New("no open session exists for this day")

	// Query errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidDate    = errors.New("date must be a valid date in YYYY-MM-DD format")

	// ErrUpstreamUnavailable is returned when the leave or holiday collaborator
	// fails during classification. The record's status stays NO_RECORD so a
	// later retry can classify it; the engine never guesses ABSENT or PRESENT.
	ErrUpstreamUnavailable = errors.New("leave/holiday collaborator unavailable, classification deferred")
)
