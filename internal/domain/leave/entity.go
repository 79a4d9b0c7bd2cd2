package leave

// Balance is an employee's leave quota snapshot. The external leave-approval
// collaborator maintains the invariant remaining == total - taken; the engine
// only reads it.
type Balance struct {
	Total     int `json:"total"`
	Taken     int `json:"taken"`
	Remaining int `json:"remaining"`
}
