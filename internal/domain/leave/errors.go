package leave

import "errors"

var (
	ErrBalanceNotFound = errors.New("no leave balance for employee")
)
