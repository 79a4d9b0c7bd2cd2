package leave

import (
	"context"
	"time"
)

// Ledger is the read-only interface onto the external leave-approval
// collaborator. Approve/reject/accrue mutations live outside the engine.
type Ledger interface {
	// HasApprovedLeave reports whether an approved leave covers the date
	HasApprovedLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// Balance returns the employee's quota snapshot
	Balance(ctx context.Context, employeeID string) (Balance, error)
}
