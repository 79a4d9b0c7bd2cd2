package geo

import "math"

const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate.
type Point struct {
	Latitude  float64
	Longitude float64
}

// HaversineDistance returns the great-circle distance between two coordinates
// in meters.
func HaversineDistance(from, to Point) float64 {
	dLat := (to.Latitude - from.Latitude) * (math.Pi / 180.0)
	dLon := (to.Longitude - from.Longitude) * (math.Pi / 180.0)

	fromLatRad := from.Latitude * (math.Pi / 180.0)
	toLatRad := to.Latitude * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(fromLatRad)*math.Cos(toLatRad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Fence is a circular geofence around a workplace reference point.
type Fence struct {
	Center       Point
	RadiusMeters float64
}

// Validator decides whether a recorded coordinate counts as within bounds of
// an optional workplace fence. Stateless.
type Validator struct{}

func NewValidator() Validator {
	return Validator{}
}

// Validate returns true when the point lies inside the fence. A nil fence
// means geofencing is not configured for the workplace and every point is
// accepted.
func (Validator) Validate(point Point, fence *Fence) bool {
	if fence == nil {
		return true
	}
	return HaversineDistance(point, fence.Center) <= fence.RadiusMeters
}
