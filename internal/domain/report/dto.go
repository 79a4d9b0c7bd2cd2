package report

import (
	"github.com/edudesk/attendance-engine-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE SUMMARY
// ========================================

// Window names for the fixed summary ranges. They parameterize the same
// summarize call; arbitrary [start, end] ranges go through start/end instead.
const (
	WindowToday       = "today"
	WindowMonthToDate = "month"
	WindowYearToDate  = "year"
)

var windowValues = []string{WindowToday, WindowMonthToDate, WindowYearToDate}

type SummaryRequest struct {
	EmployeeID string `json:"-"`
	Window     string `json:"window,omitempty"`     // today | month | year
	StartDate  string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Window != "" {
		if !validator.IsInSlice(r.Window, windowValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "window",
				Message: "window must be one of: today, month, year",
			})
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StatusCounts breaks the summary window down per canonical status.
type StatusCounts struct {
	Present  int `json:"present"`
	Late     int `json:"late"`
	HalfDay  int `json:"half_day"`
	Absent   int `json:"absent"`
	OnLeave  int `json:"on_leave"`
	Holiday  int `json:"holiday"`
	NoRecord int `json:"no_record"`
}

// AttendanceSummary is computed on demand and never persisted.
type AttendanceSummary struct {
	PeriodStart string       `json:"period_start"`
	PeriodEnd   string       `json:"period_end"`
	Counts      StatusCounts `json:"counts"`

	// WorkingDays excludes holidays, approved leave, and not-yet-evaluable
	// days from the attendance-rate denominator.
	WorkingDays      int     `json:"working_days"`
	AttendanceRate   float64 `json:"attendance_rate"`   // percent, one decimal
	AverageWorkHours float64 `json:"average_work_hours"` // two decimals, 0 when no eligible days
}
