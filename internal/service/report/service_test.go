package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/config"
	"github.com/edudesk/attendance-engine-go/internal/domain/attendance"
	"github.com/edudesk/attendance-engine-go/internal/domain/employee"
	"github.com/edudesk/attendance-engine-go/internal/domain/holiday"
	"github.com/edudesk/attendance-engine-go/internal/domain/leave"
	"github.com/edudesk/attendance-engine-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) CreateRecord(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetRecord(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	key := date.Format("2006-01-02")
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && f.records[i].Date.Format("2006-01-02") == key {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListRecords(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	startKey := start.Format("2006-01-02")
	endKey := end.Format("2006-01-02")
	var out []attendance.Record
	for _, rec := range f.records {
		key := rec.Date.Format("2006-01-02")
		if rec.EmployeeID == employeeID && key >= startKey && key <= endKey {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) UpdateDerived(_ context.Context, _ string, _ attendance.Status, _ int) error {
	return nil
}

func (f *fakeAttendanceRepo) CreateSession(_ context.Context, s attendance.Session) (attendance.Session, error) {
	return s, nil
}

func (f *fakeAttendanceRepo) CloseSession(_ context.Context, _ attendance.Session) error {
	return nil
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: "emp-1", FullName: "Ayu Lestari", Timezone: "Asia/Jakarta"}, nil
}

type fakeLedger struct {
	leaveDates map[string]bool
	err        error
}

func (f *fakeLedger) HasApprovedLeave(_ context.Context, _ string, date time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.leaveDates[date.Format("2006-01-02")], nil
}

func (f *fakeLedger) Balance(_ context.Context, _ string) (leave.Balance, error) {
	return leave.Balance{}, nil
}

type fakeCalendar struct {
	holidays map[string]bool
}

func (f *fakeCalendar) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return f.holidays[date.Format("2006-01-02")], nil
}

func (f *fakeCalendar) ListRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for key, isHoliday := range f.holidays {
		if !isHoliday {
			continue
		}
		if key >= start.Format("2006-01-02") && key <= end.Format("2006-01-02") {
			date, _ := time.Parse("2006-01-02", key)
			out = append(out, holiday.Holiday{ID: key, Name: "holiday", Date: date})
		}
	}
	return out, nil
}

// ===== HARNESS =====

var jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		panic(err)
	}
	return loc
}()

func day(value string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", value, jakarta)
	if err != nil {
		panic(err)
	}
	return d
}

func record(date string, status attendance.Status, workMinutes int) attendance.Record {
	return attendance.Record{
		ID:          "rec-" + date,
		EmployeeID:  "emp-1",
		Date:        day(date),
		Status:      status,
		WorkMinutes: workMinutes,
	}
}

func newReportHarness(records []attendance.Record, holidays map[string]bool, leaveDates map[string]bool, now time.Time) (*ReportServiceImpl, *fakeLedger) {
	if holidays == nil {
		holidays = map[string]bool{}
	}
	if leaveDates == nil {
		leaveDates = map[string]bool{}
	}
	ledger := &fakeLedger{leaveDates: leaveDates}
	svc := NewReportService(
		&fakeAttendanceRepo{records: records},
		fakeEmployeeRepo{},
		ledger,
		&fakeCalendar{holidays: holidays},
		config.EngineConfig{DefaultTimezone: time.UTC},
	).(*ReportServiceImpl)
	svc.now = func() time.Time { return now }
	return svc, ledger
}

// ===== TESTS =====

func TestSummarize_FullMonthAllAttended(t *testing.T) {
	t.Parallel()

	// June 2026: 30 days, 4 holidays, 3 leave days, the remaining 23 all
	// attended. Attendance rate must be exactly 100.
	var records []attendance.Record
	holidays := map[string]bool{
		"2026-06-01": true, "2026-06-07": true, "2026-06-14": true, "2026-06-27": true,
	}
	leaveDates := map[string]bool{
		"2026-06-10": true, "2026-06-11": true, "2026-06-12": true,
	}

	late := 0
	for d := day("2026-06-01"); !d.After(day("2026-06-30")); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if holidays[key] || leaveDates[key] {
			continue
		}
		status := attendance.StatusPresent
		minutes := 480
		if late < 2 {
			status = attendance.StatusLate
			minutes = 450
			late++
		}
		records = append(records, record(key, status, minutes))
	}

	svc, _ := newReportHarness(records, holidays, leaveDates, day("2026-07-15"))

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-06-01",
		EndDate:    "2026-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-06-01", summary.PeriodStart)
	assert.Equal(t, "2026-06-30", summary.PeriodEnd)
	assert.Equal(t, 21, summary.Counts.Present)
	assert.Equal(t, 2, summary.Counts.Late)
	assert.Equal(t, 4, summary.Counts.Holiday)
	assert.Equal(t, 3, summary.Counts.OnLeave)
	assert.Equal(t, 0, summary.Counts.Absent)
	assert.Equal(t, 23, summary.WorkingDays)
	assert.InDelta(t, 100.0, summary.AttendanceRate, 0.001)
}

func TestSummarize_AbsencesLowerTheRate(t *testing.T) {
	t.Parallel()

	// Four working days, two attended. 2026-03-03 and 03-04 have no record and
	// are in the past, so they count as absent.
	records := []attendance.Record{
		record("2026-03-02", attendance.StatusPresent, 480),
		record("2026-03-05", attendance.StatusLate, 450),
	}

	svc, _ := newReportHarness(records, nil, nil, day("2026-03-10"))

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Counts.Absent)
	assert.Equal(t, 4, summary.WorkingDays)
	assert.InDelta(t, 50.0, summary.AttendanceRate, 0.001)
}

func TestSummarize_AverageWorkHours(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		record("2026-03-02", attendance.StatusPresent, 480),
		record("2026-03-03", attendance.StatusHalfDay, 180),
		record("2026-03-04", attendance.StatusLate, 450),
	}

	svc, _ := newReportHarness(records, nil, nil, day("2026-03-10"))

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
	})
	require.NoError(t, err)

	// (480 + 180 + 450) / 60 / 3 = 6.17 hours.
	assert.InDelta(t, 6.17, summary.AverageWorkHours, 0.001)
}

func TestSummarize_NoWorkedDaysMeansZeroAverage(t *testing.T) {
	t.Parallel()

	holidays := map[string]bool{"2026-03-02": true, "2026-03-03": true}
	svc, _ := newReportHarness(nil, holidays, nil, day("2026-03-10"))

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.WorkingDays)
	assert.Zero(t, summary.AttendanceRate)
	assert.Zero(t, summary.AverageWorkHours)
}

func TestSummarize_FutureDaysStayOutOfDenominator(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		record("2026-03-02", attendance.StatusPresent, 480),
	}

	// Month-to-date window evaluated mid-month would include future days if
	// the range were naive; named windows end at today.
	svc, _ := newReportHarness(records, nil, nil, day("2026-03-03"))

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		Window:     report.WindowMonthToDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", summary.PeriodStart)
	assert.Equal(t, "2026-03-03", summary.PeriodEnd)
	assert.Equal(t, 1, summary.Counts.Present)
	// 03-01 is a past day without a record, 03-03 is today without one yet.
	assert.Equal(t, 1, summary.Counts.Absent)
	assert.Equal(t, 1, summary.Counts.NoRecord)
	assert.Equal(t, 2, summary.WorkingDays)
	assert.InDelta(t, 50.0, summary.AttendanceRate, 0.001)
}

func TestSummarize_TodayWindow(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		record("2026-03-02", attendance.StatusPresent, 480),
	}

	svc, _ := newReportHarness(records, nil, nil, day("2026-03-02"))

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		Window:     report.WindowToday,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", summary.PeriodStart)
	assert.Equal(t, "2026-03-02", summary.PeriodEnd)
	assert.Equal(t, 1, summary.Counts.Present)
	assert.InDelta(t, 100.0, summary.AttendanceRate, 0.001)
}

func TestSummarize_UnresolvedPastRecordWithSessionsIsNotAbsent(t *testing.T) {
	t.Parallel()

	rec := record("2026-03-02", attendance.StatusNoRecord, 0)
	start := day("2026-03-02").Add(9 * time.Hour)
	rec.Sessions = []attendance.Session{{ID: "s1", RecordID: rec.ID, StartTime: start}}

	svc, _ := newReportHarness([]attendance.Record{rec}, nil, nil, day("2026-03-10"))

	summary, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Counts.Absent)
	assert.Equal(t, 1, summary.Counts.NoRecord)
}

func TestSummarize_LedgerDownSurfacesUnavailable(t *testing.T) {
	t.Parallel()

	svc, ledger := newReportHarness(nil, nil, nil, day("2026-03-10"))
	ledger.err = errors.New("connection refused")

	_, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
	})

	assert.ErrorIs(t, err, attendance.ErrUpstreamUnavailable)
}

func TestSummarize_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := newReportHarness(nil, nil, nil, day("2026-03-10"))

	_, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-ghost",
		Window:     report.WindowToday,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSummarize_InvalidRequest(t *testing.T) {
	t.Parallel()

	svc, _ := newReportHarness(nil, nil, nil, day("2026-03-10"))

	_, err := svc.Summarize(context.Background(), report.SummaryRequest{
		EmployeeID: "emp-1",
		Window:     "quarter",
	})

	assert.Error(t, err)
}
