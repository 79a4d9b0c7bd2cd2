package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the canonical daily attendance status. The classifier is the only
// writer; nothing else may invent status values.
type Status string

const (
	StatusPresent  Status = "PRESENT"
	StatusLate     Status = "LATE"
	StatusHalfDay  Status = "HALF_DAY"
	StatusAbsent   Status = "ABSENT"
	StatusOnLeave  Status = "ON_LEAVE"
	StatusHoliday  Status = "HOLIDAY"
	StatusNoRecord Status = "NO_RECORD"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusAbsent),
	string(StatusOnLeave),
	string(StatusHoliday),
	string(StatusNoRecord),
}

// CheckInMethod is how a session was opened.
type CheckInMethod string

const (
	MethodManual    CheckInMethod = "manual"
	MethodQR        CheckInMethod = "qr"
	MethodGeofenced CheckInMethod = "geofenced"
)

var CheckInMethodValues = []string{
	string(MethodManual),
	string(MethodQR),
	string(MethodGeofenced),
}

// Session is one check-in/check-out pair within an employee-day. EndTime is
// nil until check-out; at most one session per record may be open at a time.
type Session struct {
	ID       string
	RecordID string

	StartTime time.Time
	EndTime   *time.Time

	// Recorded coordinate at check-in, if the client supplied one.
	Latitude  *float64
	Longitude *float64
	Accuracy  *float64

	// Recorded coordinate at check-out, if the client supplied one.
	CheckOutLatitude  *float64
	CheckOutLongitude *float64

	// Reverse-geocoded address, display only. Never read by classification.
	Address *string

	// Computed once at session creation and frozen.
	IsWithinGeofence bool

	Method CheckInMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Closed reports whether the session has been checked out.
func (s *Session) Closed() bool {
	return s.EndTime != nil
}

// Duration returns the closed-session duration, zero while open.
func (s *Session) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Record is the attendance record for one employee-day. Date is midnight in
// the employee's configured timezone. Status and WorkMinutes are derived from
// Sessions plus shift config and leave/holiday facts; they are never set
// independently of those inputs.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time

	Status      Status
	WorkMinutes int

	// Chronological; insertion order is check-in order.
	Sessions []Session

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OpenSession returns the record's open session, or nil.
func (r *Record) OpenSession() *Session {
	for i := range r.Sessions {
		if !r.Sessions[i].Closed() {
			return &r.Sessions[i]
		}
	}
	return nil
}

// FirstCheckIn returns the earliest session start, or nil when no sessions
// exist.
func (r *Record) FirstCheckIn() *time.Time {
	var first *time.Time
	for i := range r.Sessions {
		start := r.Sessions[i].StartTime
		if first == nil || start.Before(*first) {
			first = &r.Sessions[i].StartTime
		}
	}
	return first
}

// LastCheckOut returns the latest closed session end, or nil when every
// session is still open or none exist.
func (r *Record) LastCheckOut() *time.Time {
	var last *time.Time
	for i := range r.Sessions {
		end := r.Sessions[i].EndTime
		if end == nil {
			continue
		}
		if last == nil || end.After(*last) {
			last = end
		}
	}
	return last
}

// HasClosedSession reports whether at least one session has been checked out.
func (r *Record) HasClosedSession() bool {
	for i := range r.Sessions {
		if r.Sessions[i].Closed() {
			return true
		}
	}
	return false
}

// ClosedMinutes sums closed-session durations in whole minutes. Open sessions
// contribute nothing until they are closed.
func (r *Record) ClosedMinutes() int {
	var total time.Duration
	for i := range r.Sessions {
		total += r.Sessions[i].Duration()
	}
	return int(total.Minutes())
}

// WorkHours converts the derived work minutes to decimal hours, two places.
func (r *Record) WorkHours() decimal.Decimal {
	return decimal.NewFromInt(int64(r.WorkMinutes)).
		Div(decimal.NewFromInt(60)).
		Round(2)
}
