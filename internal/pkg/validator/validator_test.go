package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("emp-1"))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidUUID("3e0f6b5e-7a6e-4a25-9b23-0a9f5b1c2d3e"))
	assert.True(t, IsValidUUID("3E0F6B5E-7A6E-4A25-9B23-0A9F5B1C2D3E"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()
	date, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("02-03-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	t.Parallel()
	parsed, ok := IsValidTimeOfDay("09:00")
	assert.True(t, ok)
	assert.Equal(t, 9, parsed.Hour())

	_, ok = IsValidTimeOfDay("9am")
	assert.False(t, ok)

	_, ok = IsValidTimeOfDay("25:00")
	assert.False(t, ok)
}

func TestCoordinateBounds(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidLatitude(-6.2))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.1))
	assert.False(t, IsValidLatitude(-91))

	assert.True(t, IsValidLongitude(106.8))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(180.5))
}

func TestValidationErrors_ToMap(t *testing.T) {
	t.Parallel()
	errs := ValidationErrors{
		{Field: "method", Message: "method is required"},
		{Field: "latitude", Message: "latitude must be between -90 and 90"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "method is required", m["method"])
	assert.Contains(t, errs.Error(), "method: method is required")
}
