package report

import "context"

// Service rolls daily attendance records into period statistics for the
// dashboards and the salary-netting collaborator.
type Service interface {
	Summarize(ctx context.Context, req SummaryRequest) (AttendanceSummary, error)
}
