package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/domain/holiday"
	"github.com/edudesk/attendance-engine-go/internal/pkg/database"
)

type holidayCalendar struct {
	db *database.DB
}

func NewHolidayCalendar(db *database.DB) holiday.Calendar {
	return &holidayCalendar{db: db}
}

// IsHoliday implements holiday.Calendar.
func (r *holidayCalendar) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM holidays
			WHERE date = $1
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// ListRange implements holiday.Calendar.
func (r *holidayCalendar) ListRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}
