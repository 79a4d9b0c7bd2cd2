package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/domain/employee"
	"github.com/edudesk/attendance-engine-go/internal/domain/shift"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShiftServiceImpl struct {
	repo      shift.Repository
	employees employee.Repository
}

func NewShiftService(repo shift.Repository, employees employee.Repository) shift.Service {
	return &ShiftServiceImpl{
		repo:      repo,
		employees: employees,
	}
}

// Get implements shift.Service.
func (s *ShiftServiceImpl) Get(ctx context.Context, employeeID string) (shift.ConfigResponse, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return shift.ConfigResponse{}, err
	}

	cfg, err := s.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return shift.ConfigResponse{}, err
	}

	return mapConfig(cfg), nil
}

// Upsert implements shift.Service. A replaced configuration applies
// prospectively; already-classified days are not rewritten.
func (s *ShiftServiceImpl) Upsert(ctx context.Context, req shift.UpsertConfigRequest) (shift.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ConfigResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.ConfigResponse{}, err
	}

	start, _ := time.Parse("15:04", req.Start)
	end, _ := time.Parse("15:04", req.End)
	hours, _ := decimal.NewFromString(req.ExpectedWorkingHours)

	cfg, err := s.repo.Upsert(ctx, shift.Config{
		ID:                   uuid.NewString(),
		EmployeeID:           req.EmployeeID,
		Start:                start,
		End:                  end,
		GracePeriodMinutes:   req.GracePeriodMinutes,
		ExpectedWorkingHours: hours,
	})
	if err != nil {
		return shift.ConfigResponse{}, fmt.Errorf("failed to upsert shift config: %w", err)
	}

	return mapConfig(cfg), nil
}

func mapConfig(cfg shift.Config) shift.ConfigResponse {
	return shift.ConfigResponse{
		EmployeeID:           cfg.EmployeeID,
		Start:                cfg.Start.Format("15:04"),
		End:                  cfg.End.Format("15:04"),
		GracePeriodMinutes:   cfg.GracePeriodMinutes,
		ExpectedWorkingHours: cfg.ExpectedWorkingHours.String(),
	}
}
