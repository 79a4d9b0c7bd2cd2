package response

import (
	"errors"
	"net/http"

	"github.com/edudesk/attendance-engine-go/internal/domain/attendance"
	"github.com/edudesk/attendance-engine-go/internal/domain/employee"
	"github.com/edudesk/attendance-engine-go/internal/domain/leave"
	"github.com/edudesk/attendance-engine-go/internal/domain/shift"
	"github.com/edudesk/attendance-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "An open session already exists, check out first")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No open session to check out of")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be a valid date in YYYY-MM-DD format", nil)
	case errors.Is(err, attendance.ErrUpstreamUnavailable):
		ServiceUnavailable(w, "Leave/holiday data is temporarily unavailable, try again later")

	// Shift domain errors
	case errors.Is(err, shift.ErrConfigNotFound):
		NotFound(w, "Shift configuration not found")
	case errors.Is(err, shift.ErrInvalidConfig):
		BadRequest(w, "Invalid shift configuration", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
