package employee

import "context"

// Repository is the read-only view of the staff directory.
type Repository interface {
	// GetByID retrieves an employee; ErrEmployeeNotFound for unknown IDs
	GetByID(ctx context.Context, id string) (Employee, error)
}
