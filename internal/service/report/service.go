package report

import (
	"context"
	"fmt"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/config"
	"github.com/edudesk/attendance-engine-go/internal/domain/attendance"
	"github.com/edudesk/attendance-engine-go/internal/domain/employee"
	"github.com/edudesk/attendance-engine-go/internal/domain/holiday"
	"github.com/edudesk/attendance-engine-go/internal/domain/leave"
	"github.com/edudesk/attendance-engine-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
	employees      employee.Repository
	ledger         leave.Ledger
	calendar       holiday.Calendar

	defaultTZ *time.Location

	now func() time.Time
}

func NewReportService(
	attendanceRepo attendance.Repository,
	employees employee.Repository,
	ledger leave.Ledger,
	calendar holiday.Calendar,
	cfg config.EngineConfig,
) report.Service {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employees:      employees,
		ledger:         ledger,
		calendar:       calendar,
		defaultTZ:      cfg.DefaultTimezone,
		now:            time.Now,
	}
}

// Summarize implements report.Service. The summary is assembled on demand
// from records plus leave/holiday facts; nothing is persisted.
func (s *ReportServiceImpl) Summarize(ctx context.Context, req report.SummaryRequest) (report.AttendanceSummary, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceSummary{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.AttendanceSummary{}, err
	}

	loc := emp.Location(s.defaultTZ)
	nowLocal := s.now().In(loc)
	today := startOfDay(nowLocal)

	start, end := resolveWindow(req, today, loc)

	var (
		records  []attendance.Record
		holidays []holiday.Holiday
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListRecords(gctx, emp.ID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holidays, err = s.calendar.ListRange(gctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.AttendanceSummary{}, err
	}

	recordsByDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		recordsByDate[rec.Date.Format("2006-01-02")] = rec
	}
	holidayDates := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidayDates[h.Date.Format("2006-01-02")] = struct{}{}
	}

	summary := report.AttendanceSummary{
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
	}

	var (
		workedMinutes int
		workedDays    int
	)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")

		rec, hasRecord := recordsByDate[key]
		if hasRecord && rec.Status != attendance.StatusNoRecord {
			switch rec.Status {
			case attendance.StatusPresent:
				summary.Counts.Present++
			case attendance.StatusLate:
				summary.Counts.Late++
			case attendance.StatusHalfDay:
				summary.Counts.HalfDay++
			case attendance.StatusAbsent:
				summary.Counts.Absent++
			case attendance.StatusOnLeave:
				summary.Counts.OnLeave++
			case attendance.StatusHoliday:
				summary.Counts.Holiday++
			}
			if rec.Status == attendance.StatusPresent ||
				rec.Status == attendance.StatusLate ||
				rec.Status == attendance.StatusHalfDay {
				workedMinutes += rec.WorkMinutes
				workedDays++
			}
			continue
		}

		// No usable record: derive the sessionless verdict from facts. NO_RECORD
		// statuses left by a deferred classification take this path too, so a
		// day the collaborators could not resolve at check-in time still gets
		// its proper verdict here.
		if _, ok := holidayDates[key]; ok {
			summary.Counts.Holiday++
			continue
		}
		onLeave, err := s.ledger.HasApprovedLeave(ctx, emp.ID, day)
		if err != nil {
			return report.AttendanceSummary{}, fmt.Errorf("%w: %v", attendance.ErrUpstreamUnavailable, err)
		}
		if onLeave {
			summary.Counts.OnLeave++
			continue
		}
		if day.Before(today) && !(hasRecord && len(rec.Sessions) > 0) {
			summary.Counts.Absent++
			continue
		}
		summary.Counts.NoRecord++
	}

	// Working days carry an attendance obligation: holidays, approved leave,
	// and not-yet-evaluable days stay out of the denominator.
	summary.WorkingDays = summary.Counts.Present + summary.Counts.Late +
		summary.Counts.HalfDay + summary.Counts.Absent

	if summary.WorkingDays > 0 {
		attended := summary.Counts.Present + summary.Counts.Late + summary.Counts.HalfDay
		summary.AttendanceRate = decimal.NewFromInt(int64(attended)).
			Div(decimal.NewFromInt(int64(summary.WorkingDays))).
			Mul(decimal.NewFromInt(100)).
			Round(1).
			InexactFloat64()
	}

	if workedDays > 0 {
		summary.AverageWorkHours = decimal.NewFromInt(int64(workedMinutes)).
			Div(decimal.NewFromInt(60)).
			Div(decimal.NewFromInt(int64(workedDays))).
			Round(2).
			InexactFloat64()
	}

	return summary, nil
}

// resolveWindow turns a named window or explicit range into [start, end] at
// midnight in the employee's timezone. Named windows never extend past today.
func resolveWindow(req report.SummaryRequest, today time.Time, loc *time.Location) (time.Time, time.Time) {
	switch req.Window {
	case report.WindowToday:
		return today, today
	case report.WindowMonthToDate:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc), today
	case report.WindowYearToDate:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc), today
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, loc)
	return start, end
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
