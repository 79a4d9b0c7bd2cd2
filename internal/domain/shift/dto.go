package shift

import (
	"github.com/edudesk/attendance-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertConfigRequest struct {
	EmployeeID           string `json:"-"`
	Start                string `json:"start"` // HH:MM
	End                  string `json:"end"`   // HH:MM
	GracePeriodMinutes   int    `json:"grace_period_minutes"`
	ExpectedWorkingHours string `json:"expected_working_hours"` // decimal, e.g. "8" or "7.5"
}

func (r *UpsertConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, okStart := validator.IsValidTimeOfDay(r.Start)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be a time of day in HH:MM format",
		})
	}

	end, okEnd := validator.IsValidTimeOfDay(r.End)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be a time of day in HH:MM format",
		})
	}

	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be after start",
		})
	}

	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	hours, err := decimal.NewFromString(r.ExpectedWorkingHours)
	if err != nil || hours.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_working_hours",
			Message: "expected_working_hours must be a positive decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigResponse struct {
	EmployeeID           string `json:"employee_id"`
	Start                string `json:"start"`
	End                  string `json:"end"`
	GracePeriodMinutes   int    `json:"grace_period_minutes"`
	ExpectedWorkingHours string `json:"expected_working_hours"`
}
