package attendance

import (
	"context"
)

// Service defines the check-in/check-out surface of the engine plus the
// read-only record queries the dashboards consume.
type Service interface {
	// CheckIn opens a session for the employee's current day
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes the open session and recomputes the day's work hours
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// GetRecord returns the record for one employee-day, classifying it on
	// demand. Days without sessions yield a synthesized record.
	GetRecord(ctx context.Context, employeeID string, date string) (RecordResponse, error)

	// GetHistory returns persisted records in a date range
	GetHistory(ctx context.Context, employeeID string, filter HistoryFilter) ([]RecordResponse, error)
}

// Geocoder resolves a coordinate to a human-readable address for display on a
// session. Classification never reads the result.
type Geocoder interface {
	ReverseLookup(ctx context.Context, latitude, longitude float64) (string, error)
}
