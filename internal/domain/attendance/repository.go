package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records and their sessions.
// Records are loaded with sessions attached, in check-in order.
type Repository interface {
	// CreateRecord inserts a new employee-day record
	CreateRecord(ctx context.Context, rec Record) (Record, error)

	// GetRecord retrieves the record for an employee on a calendar date.
	// Returns (nil, nil) when no record exists yet.
	GetRecord(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListRecords retrieves records for an employee in [start, end], ascending by date
	ListRecords(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// UpdateDerived writes back the classifier's output for a record
	UpdateDerived(ctx context.Context, recordID string, status Status, workMinutes int) error

	// CreateSession appends a session to a record
	CreateSession(ctx context.Context, session Session) (Session, error)

	// CloseSession sets a session's end time and check-out coordinate
	CloseSession(ctx context.Context, session Session) error
}
