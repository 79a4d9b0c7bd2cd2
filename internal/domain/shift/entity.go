package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds per-employee scheduling parameters. The engine reads the
// current configuration only; a change applies prospectively and no history
// is kept.
type Config struct {
	ID         string
	EmployeeID string

	// Start and End carry a time of day at minute resolution; only the clock
	// components are meaningful. Overnight shifts are out of scope, so End is
	// strictly after Start on the same working day.
	Start time.Time
	End   time.Time

	GracePeriodMinutes   int
	ExpectedWorkingHours decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartOn anchors the shift start to a calendar date in the given timezone.
func (c Config) StartOn(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		c.Start.Hour(), c.Start.Minute(), 0, 0, loc)
}

// EndOn anchors the shift end to a calendar date in the given timezone.
func (c Config) EndOn(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		c.End.Hour(), c.End.Minute(), 0, 0, loc)
}

// GraceLimitOn is the last instant a check-in still counts as on time.
func (c Config) GraceLimitOn(date time.Time, loc *time.Location) time.Time {
	return c.StartOn(date, loc).Add(time.Duration(c.GracePeriodMinutes) * time.Minute)
}
