package employee

import (
	"time"

	"github.com/edudesk/attendance-engine-go/internal/pkg/geo"
)

// Employee is the slice of the staff directory the attendance engine needs:
// identity, timezone, and an optional workplace geofence. The directory itself
// is owned by the HR-facing collaborator.
type Employee struct {
	ID       string
	FullName string
	Timezone string // IANA name, e.g. "Asia/Jakarta"

	// Workplace reference point. Nil coordinates mean geofencing is not
	// configured for this employee and every check-in location is accepted.
	WorkplaceLatitude     *float64
	WorkplaceLongitude    *float64
	WorkplaceRadiusMeters *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the employee's timezone, falling back to the supplied
// default when the stored name is missing or unknown.
func (e Employee) Location(fallback *time.Location) *time.Location {
	if e.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

// Fence returns the employee's workplace geofence, or nil when not configured.
func (e Employee) Fence() *geo.Fence {
	if e.WorkplaceLatitude == nil || e.WorkplaceLongitude == nil || e.WorkplaceRadiusMeters == nil {
		return nil
	}
	return &geo.Fence{
		Center: geo.Point{
			Latitude:  *e.WorkplaceLatitude,
			Longitude: *e.WorkplaceLongitude,
		},
		RadiusMeters: float64(*e.WorkplaceRadiusMeters),
	}
}
