package shift

import "context"

// Repository defines data access for shift configurations, keyed by employee.
type Repository interface {
	// GetByEmployeeID retrieves the employee's current shift configuration
	GetByEmployeeID(ctx context.Context, employeeID string) (Config, error)

	// Upsert replaces the employee's shift configuration
	Upsert(ctx context.Context, config Config) (Config, error)
}

// Service defines the HR-facing configuration surface.
type Service interface {
	Get(ctx context.Context, employeeID string) (ConfigResponse, error)
	Upsert(ctx context.Context, req UpsertConfigRequest) (ConfigResponse, error)
}
