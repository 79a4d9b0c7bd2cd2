package attendance

import (
	"time"

	"github.com/edudesk/attendance-engine-go/internal/domain/attendance"
	"github.com/edudesk/attendance-engine-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// ClassifyInput carries everything classification reads. All I/O (sessions,
// shift config, leave and holiday facts) happens before the call; Now is
// supplied by the caller so the same inputs always classify the same way.
type ClassifyInput struct {
	Record attendance.Record
	Shift  shift.Config

	// HalfDayFraction of expected working hours is the HALF_DAY threshold.
	HalfDayFraction decimal.Decimal

	OnApprovedLeave bool
	IsHoliday       bool

	// Location is the employee's timezone; Record.Date is midnight in it.
	Location *time.Location
	Now      time.Time
}

// Classify derives the canonical status for one employee-day. First matching
// rule wins:
//
//  1. holiday
//  2. approved leave
//  3. no sessions, day already over  -> ABSENT
//  4. no sessions, day not over yet  -> NO_RECORD
//  5. sessions: on-time/late by first check-in vs grace limit, overridden to
//     HALF_DAY when closed work time is under the threshold
//
// A check-in on a holiday does not override rule 1.
func Classify(in ClassifyInput) attendance.Status {
	if in.IsHoliday {
		return attendance.StatusHoliday
	}
	if in.OnApprovedLeave {
		return attendance.StatusOnLeave
	}

	if len(in.Record.Sessions) == 0 {
		// Calendar-date comparison, not instant comparison: Date may be
		// anchored to UTC midnight by the database while today is anchored to
		// the employee's timezone.
		today := in.Now.In(in.Location).Format("2006-01-02")
		if in.Record.Date.Format("2006-01-02") < today {
			return attendance.StatusAbsent
		}
		return attendance.StatusNoRecord
	}

	candidate := attendance.StatusPresent
	firstCheckIn := *in.Record.FirstCheckIn()
	graceLimit := in.Shift.GraceLimitOn(in.Record.Date, in.Location)
	if firstCheckIn.After(graceLimit) {
		candidate = attendance.StatusLate
	}

	// The half-day override needs at least one closed session; a day that is
	// still entirely open keeps its on-time/late candidate.
	if in.Record.HasClosedSession() {
		workHours := decimal.NewFromInt(int64(in.Record.ClosedMinutes())).
			Div(decimal.NewFromInt(60))
		threshold := in.Shift.ExpectedWorkingHours.Mul(in.HalfDayFraction)
		if workHours.LessThan(threshold) {
			return attendance.StatusHalfDay
		}
	}

	return candidate
}
