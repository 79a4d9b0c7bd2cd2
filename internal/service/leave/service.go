package leave

import (
	"context"

	"github.com/edudesk/attendance-engine-go/internal/domain/employee"
	"github.com/edudesk/attendance-engine-go/internal/domain/leave"
)

// LeaveServiceImpl exposes the employee's quota snapshot from the read-only
// ledger. All mutations live with the external leave-approval collaborator.
type LeaveServiceImpl struct {
	ledger    leave.Ledger
	employees employee.Repository
}

func NewLeaveService(ledger leave.Ledger, employees employee.Repository) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		ledger:    ledger,
		employees: employees,
	}
}

func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) (leave.Balance, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return leave.Balance{}, err
	}
	return s.ledger.Balance(ctx, employeeID)
}
