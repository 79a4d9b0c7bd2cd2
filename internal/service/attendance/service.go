package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/config"
	"github.com/edudesk/attendance-engine-go/internal/domain/attendance"
	"github.com/edudesk/attendance-engine-go/internal/domain/employee"
	"github.com/edudesk/attendance-engine-go/internal/domain/holiday"
	"github.com/edudesk/attendance-engine-go/internal/domain/leave"
	"github.com/edudesk/attendance-engine-go/internal/domain/shift"
	"github.com/edudesk/attendance-engine-go/internal/pkg/geo"
	"github.com/edudesk/attendance-engine-go/internal/pkg/lock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	repo      attendance.Repository
	employees employee.Repository
	shifts    shift.Repository
	ledger    leave.Ledger
	calendar  holiday.Calendar
	geofence  geo.Validator
	geocoder  attendance.Geocoder

	locks  *lock.Keyed
	logger *slog.Logger

	halfDayFraction decimal.Decimal
	defaultTZ       *time.Location

	now func() time.Time
}

func NewAttendanceService(
	repo attendance.Repository,
	employees employee.Repository,
	shifts shift.Repository,
	ledger leave.Ledger,
	calendar holiday.Calendar,
	geocoder attendance.Geocoder,
	locks *lock.Keyed,
	cfg config.EngineConfig,
	logger *slog.Logger,
) attendance.Service {
	return &AttendanceServiceImpl{
		repo:            repo,
		employees:       employees,
		shifts:          shifts,
		ledger:          ledger,
		calendar:        calendar,
		geofence:        geo.NewValidator(),
		geocoder:        geocoder,
		locks:           locks,
		logger:          logger,
		halfDayFraction: cfg.HalfDayFraction,
		defaultTZ:       cfg.DefaultTimezone,
		now:             time.Now,
	}
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowUTC := s.now().UTC()
	loc := emp.Location(s.defaultTZ)
	date := startOfDay(nowUTC.In(loc))

	release := s.locks.Acquire(dayKey(emp.ID, date))
	defer release()

	rec, err := s.repo.GetRecord(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil {
		created, err := s.repo.CreateRecord(ctx, attendance.Record{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			Date:       date,
			Status:     attendance.StatusNoRecord,
		})
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		rec = &created
	}

	if rec.OpenSession() != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// The geofence verdict is computed once here and frozen on the session;
	// later fence changes never rewrite history.
	within := true
	if req.Latitude != nil {
		within = s.geofence.Validate(geo.Point{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		}, emp.Fence())
	}

	session := attendance.Session{
		ID:               uuid.NewString(),
		RecordID:         rec.ID,
		StartTime:        nowUTC,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Accuracy:         req.Accuracy,
		IsWithinGeofence: within,
		Method:           attendance.CheckInMethod(req.Method),
	}

	if s.geocoder != nil && req.Latitude != nil {
		address, err := s.geocoder.ReverseLookup(ctx, *req.Latitude, *req.Longitude)
		if err != nil {
			// Address is display-only; a geocoder outage never blocks check-in.
			s.logger.WarnContext(ctx, "reverse geocoding failed",
				slog.String("employee_id", emp.ID),
				slog.Any("error", err),
			)
		} else if address != "" {
			session.Address = &address
		}
	}

	created, err := s.repo.CreateSession(ctx, session)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create session: %w", err)
	}
	rec.Sessions = append(rec.Sessions, created)

	s.reclassifyLogged(ctx, rec, loc, nowUTC)

	return mapRecord(*rec), nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	nowUTC := s.now().UTC()
	loc := emp.Location(s.defaultTZ)
	date := startOfDay(nowUTC.In(loc))

	release := s.locks.Acquire(dayKey(emp.ID, date))
	defer release()

	rec, err := s.repo.GetRecord(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrNoOpenSession
	}

	open := rec.OpenSession()
	if open == nil {
		return attendance.RecordResponse{}, attendance.ErrNoOpenSession
	}

	endTime := nowUTC
	open.EndTime = &endTime
	open.CheckOutLatitude = req.Latitude
	open.CheckOutLongitude = req.Longitude

	if err := s.repo.CloseSession(ctx, *open); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	s.reclassifyLogged(ctx, rec, loc, nowUTC)

	return mapRecord(*rec), nil
}

// GetRecord implements attendance.Service. Days with no persisted record are
// answered with a synthesized record carrying the classifier's verdict;
// nothing is written for them.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, employeeID string, date string) (attendance.RecordResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	loc := emp.Location(s.defaultTZ)
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrInvalidDate
	}

	nowUTC := s.now().UTC()

	release := s.locks.Acquire(dayKey(emp.ID, day))
	defer release()

	rec, err := s.repo.GetRecord(ctx, emp.ID, day)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if rec == nil {
		virtual := attendance.Record{
			EmployeeID: emp.ID,
			Date:       day,
			Status:     attendance.StatusNoRecord,
		}
		status, err := s.evaluate(ctx, virtual, loc, nowUTC)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		virtual.Status = status
		return mapRecord(virtual), nil
	}

	if err := s.reclassify(ctx, rec, loc, nowUTC); err != nil {
		return attendance.RecordResponse{}, err
	}

	return mapRecord(*rec), nil
}

// GetHistory implements attendance.Service. It returns persisted records as
// last classified; per-day re-evaluation happens in GetRecord and in the
// summary aggregation.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	loc := emp.Location(s.defaultTZ)
	start, _ := time.ParseInLocation("2006-01-02", filter.StartDate, loc)
	end, _ := time.ParseInLocation("2006-01-02", filter.EndDate, loc)

	records, err := s.repo.ListRecords(ctx, emp.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecord(rec))
	}
	return responses, nil
}

// reclassify re-derives status and work minutes for a record and persists the
// result when it changed. Safe to call any number of times with the same
// inputs.
func (s *AttendanceServiceImpl) reclassify(ctx context.Context, rec *attendance.Record, loc *time.Location, now time.Time) error {
	status, err := s.evaluate(ctx, *rec, loc, now)
	if err != nil {
		return err
	}

	minutes := rec.ClosedMinutes()
	if status == rec.Status && minutes == rec.WorkMinutes {
		return nil
	}

	if err := s.repo.UpdateDerived(ctx, rec.ID, status, minutes); err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	rec.Status = status
	rec.WorkMinutes = minutes
	return nil
}

// reclassifyLogged is the mutating-path variant: a failed classification must
// not undo a successful check-in or check-out, so the error is logged and the
// record keeps NO_RECORD until the next read resolves it.
func (s *AttendanceServiceImpl) reclassifyLogged(ctx context.Context, rec *attendance.Record, loc *time.Location, now time.Time) {
	if err := s.reclassify(ctx, rec, loc, now); err != nil {
		s.logger.WarnContext(ctx, "classification deferred",
			slog.String("employee_id", rec.EmployeeID),
			slog.String("date", rec.Date.Format("2006-01-02")),
			slog.Any("error", err),
		)
	}
}

// evaluate gathers the classification facts and runs the pure classifier. The
// leave ledger is an external collaborator; its failures surface as
// ErrUpstreamUnavailable so callers never guess a status.
func (s *AttendanceServiceImpl) evaluate(ctx context.Context, rec attendance.Record, loc *time.Location, now time.Time) (attendance.Status, error) {
	var (
		isHoliday bool
		onLeave   bool
		cfg       shift.Config
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		isHoliday, err = s.calendar.IsHoliday(gctx, rec.Date)
		if err != nil {
			return fmt.Errorf("failed to consult holiday calendar: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		onLeave, err = s.ledger.HasApprovedLeave(gctx, rec.EmployeeID, rec.Date)
		if err != nil {
			return fmt.Errorf("%w: %v", attendance.ErrUpstreamUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cfg, err = s.shifts.GetByEmployeeID(gctx, rec.EmployeeID)
		if err != nil {
			if errors.Is(err, shift.ErrConfigNotFound) && len(rec.Sessions) == 0 {
				// Sessionless days classify without a shift config.
				return nil
			}
			return fmt.Errorf("failed to get shift config: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.StatusNoRecord, err
	}

	return Classify(ClassifyInput{
		Record:          rec,
		Shift:           cfg,
		HalfDayFraction: s.halfDayFraction,
		OnApprovedLeave: onLeave,
		IsHoliday:       isHoliday,
		Location:        loc,
		Now:             now,
	}), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + ":" + date.Format("2006-01-02")
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func mapRecord(rec attendance.Record) attendance.RecordResponse {
	sessions := make([]attendance.SessionResponse, 0, len(rec.Sessions))
	for i := range rec.Sessions {
		s := &rec.Sessions[i]
		sessions = append(sessions, attendance.SessionResponse{
			ID:                s.ID,
			StartTime:         s.StartTime.Format(time.RFC3339),
			EndTime:           timePtrToString(s.EndTime),
			Latitude:          s.Latitude,
			Longitude:         s.Longitude,
			CheckOutLatitude:  s.CheckOutLatitude,
			CheckOutLongitude: s.CheckOutLongitude,
			Address:           s.Address,
			IsWithinGeofence:  s.IsWithinGeofence,
			Method:            string(s.Method),
		})
	}

	return attendance.RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		Date:           rec.Date.Format("2006-01-02"),
		Status:         string(rec.Status),
		TotalWorkHours: rec.WorkHours().InexactFloat64(),
		Sessions:       sessions,
	}
}
