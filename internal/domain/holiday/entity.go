package holiday

import (
	"context"
	"time"
)

// Holiday is one entry in the institution's holiday calendar.
type Holiday struct {
	ID   string
	Name string
	Date time.Time
}

// Calendar is the holiday lookup the classifier consults. In a single-binary
// deployment the institution's own calendar table backs it; it can equally be
// an adapter over an external calendar service.
type Calendar interface {
	// IsHoliday reports whether the calendar date is a holiday
	IsHoliday(ctx context.Context, date time.Time) (bool, error)

	// ListRange returns holidays with dates in [start, end]
	ListRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
}
