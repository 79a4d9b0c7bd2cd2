package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/edudesk/attendance-engine-go/internal/domain/shift"
	"github.com/edudesk/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

// GetByEmployeeID implements shift.Repository.
func (r *shiftRepository) GetByEmployeeID(ctx context.Context, employeeID string) (shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_time, end_time,
			   grace_period_minutes, expected_working_hours,
			   created_at, updated_at
		FROM shift_configs
		WHERE employee_id = $1
		LIMIT 1
	`

	var cfg shift.Config
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&cfg.ID, &cfg.EmployeeID, &cfg.Start, &cfg.End,
		&cfg.GracePeriodMinutes, &cfg.ExpectedWorkingHours,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Config{}, shift.ErrConfigNotFound
		}
		return shift.Config{}, fmt.Errorf("failed to get shift config: %w", err)
	}

	return cfg, nil
}

// Upsert implements shift.Repository. One configuration per employee; a
// replacement overwrites in place.
func (r *shiftRepository) Upsert(ctx context.Context, config shift.Config) (shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_configs (
			id, employee_id, start_time, end_time,
			grace_period_minutes, expected_working_hours
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			grace_period_minutes = EXCLUDED.grace_period_minutes,
			expected_working_hours = EXCLUDED.expected_working_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		config.ID,
		config.EmployeeID,
		config.Start.Format("15:04:05"),
		config.End.Format("15:04:05"),
		config.GracePeriodMinutes,
		config.ExpectedWorkingHours,
	).Scan(&config.ID, &config.CreatedAt, &config.UpdatedAt)

	if err != nil {
		return shift.Config{}, fmt.Errorf("failed to upsert shift config: %w", err)
	}

	return config, nil
}
