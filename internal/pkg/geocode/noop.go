package geocode

import "context"

// Noop is the default reverse geocoder. Deployments without a geocoding
// provider still check in fine; sessions simply carry no address.
type Noop struct{}

func NewNoop() Noop {
	return Noop{}
}

func (Noop) ReverseLookup(_ context.Context, _, _ float64) (string, error) {
	return "", nil
}
