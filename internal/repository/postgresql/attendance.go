package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/domain/attendance"
	"github.com/edudesk/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// CreateRecord implements attendance.Repository.
func (r *attendanceRepository) CreateRecord(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, work_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date.Format("2006-01-02"),
		rec.Status,
		rec.WorkMinutes,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetRecord implements attendance.Repository.
func (r *attendanceRepository) GetRecord(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, work_minutes, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.WorkMinutes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	sessions, err := r.sessionsForRecords(ctx, []string{rec.ID})
	if err != nil {
		return nil, err
	}
	rec.Sessions = sessions[rec.ID]

	return &rec, nil
}

// ListRecords implements attendance.Repository.
func (r *attendanceRepository) ListRecords(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, work_minutes, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var (
		records []attendance.Record
		ids     []string
	)
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.WorkMinutes,
			&rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
		ids = append(ids, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	if len(ids) == 0 {
		return records, nil
	}

	sessions, err := r.sessionsForRecords(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Sessions = sessions[records[i].ID]
	}

	return records, nil
}

// UpdateDerived implements attendance.Repository.
func (r *attendanceRepository) UpdateDerived(ctx context.Context, recordID string, status attendance.Status, workMinutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET status = $2, work_minutes = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, recordID, status, workMinutes)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// CreateSession implements attendance.Repository.
func (r *attendanceRepository) CreateSession(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (
			id, record_id, start_time,
			latitude, longitude, accuracy, address,
			is_within_geofence, method
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.ID,
		session.RecordID,
		session.StartTime,
		session.Latitude,
		session.Longitude,
		session.Accuracy,
		session.Address,
		session.IsWithinGeofence,
		session.Method,
	).Scan(&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// CloseSession implements attendance.Repository. The session row and the
// parent record's updated_at move together.
func (r *attendanceRepository) CloseSession(ctx context.Context, session attendance.Session) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE attendance_sessions
			SET end_time = $2, check_out_latitude = $3, check_out_longitude = $4, updated_at = NOW()
			WHERE id = $1
			  AND end_time IS NULL
		`

		tag, err := q.Exec(ctx, query,
			session.ID,
			session.EndTime,
			session.CheckOutLatitude,
			session.CheckOutLongitude,
		)
		if err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return attendance.ErrNoOpenSession
		}

		touch := `UPDATE attendance_records SET updated_at = NOW() WHERE id = $1`
		if _, err := q.Exec(ctx, touch, session.RecordID); err != nil {
			return fmt.Errorf("failed to touch attendance record: %w", err)
		}

		return nil
	})
}

// sessionsForRecords loads sessions for a batch of record IDs, keyed by
// record, in check-in order.
func (r *attendanceRepository) sessionsForRecords(ctx context.Context, recordIDs []string) (map[string][]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, record_id, start_time, end_time,
			   latitude, longitude, accuracy,
			   check_out_latitude, check_out_longitude, address,
			   is_within_geofence, method, created_at, updated_at
		FROM attendance_sessions
		WHERE record_id = ANY($1)
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make(map[string][]attendance.Session)
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(
			&s.ID, &s.RecordID, &s.StartTime, &s.EndTime,
			&s.Latitude, &s.Longitude, &s.Accuracy,
			&s.CheckOutLatitude, &s.CheckOutLongitude, &s.Address,
			&s.IsWithinGeofence, &s.Method, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions[s.RecordID] = append(sessions[s.RecordID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}
