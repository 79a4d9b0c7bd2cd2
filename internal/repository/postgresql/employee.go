package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/edudesk/attendance-engine-go/internal/domain/employee"
	"github.com/edudesk/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, timezone,
			   workplace_latitude, workplace_longitude, workplace_radius_meters,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Timezone,
		&emp.WorkplaceLatitude, &emp.WorkplaceLongitude, &emp.WorkplaceRadiusMeters,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
