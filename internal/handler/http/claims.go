package http

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
)

var errMissingEmployeeClaim = errors.New("employee_id claim is missing or invalid")

// employeeIDFromContext extracts the caller's employee identity from the
// verified token. Services receive the ID explicitly and never touch claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", errMissingEmployeeClaim
	}

	return employeeID, nil
}
