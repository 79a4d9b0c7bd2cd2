package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/domain/leave"
	"github.com/edudesk/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// leaveLedger reads the leave tables the external approval workflow writes.
// Single-binary deployments share a database with that workflow; nothing in
// here ever inserts or updates.
type leaveLedger struct {
	db *database.DB
}

func NewLeaveLedger(db *database.DB) leave.Ledger {
	return &leaveLedger{db: db}
}

// HasApprovedLeave implements leave.Ledger.
func (r *leaveLedger) HasApprovedLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM approved_leaves
			WHERE employee_id = $1
			  AND $2::date BETWEEN start_date AND end_date
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return exists, nil
}

// Balance implements leave.Ledger.
func (r *leaveLedger) Balance(ctx context.Context, employeeID string) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT total, taken, remaining
		FROM leave_balances
		WHERE employee_id = $1
		LIMIT 1
	`

	var balance leave.Balance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&balance.Total, &balance.Taken, &balance.Remaining,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return balance, nil
}
