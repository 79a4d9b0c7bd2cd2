package shift

import (
	"testing"
	"time"

	"github.com/edudesk/attendance-engine-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpsertRequest() UpsertConfigRequest {
	return UpsertConfigRequest{
		EmployeeID:           "emp-1",
		Start:                "09:00",
		End:                  "17:00",
		GracePeriodMinutes:   15,
		ExpectedWorkingHours: "8",
	}
}

func TestUpsertConfigRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		req := validUpsertRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("fractional expected hours", func(t *testing.T) {
		req := validUpsertRequest()
		req.ExpectedWorkingHours = "7.5"
		assert.NoError(t, req.Validate())
	})

	t.Run("end not after start", func(t *testing.T) {
		req := validUpsertRequest()
		req.End = "09:00"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "end")
	})

	t.Run("overnight span is rejected", func(t *testing.T) {
		req := validUpsertRequest()
		req.Start = "22:00"
		req.End = "06:00"
		assert.Error(t, req.Validate())
	})

	t.Run("negative grace", func(t *testing.T) {
		req := validUpsertRequest()
		req.GracePeriodMinutes = -1
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "grace_period_minutes")
	})

	t.Run("non-positive expected hours", func(t *testing.T) {
		req := validUpsertRequest()
		req.ExpectedWorkingHours = "0"
		assert.Error(t, req.Validate())

		req.ExpectedWorkingHours = "eight"
		assert.Error(t, req.Validate())
	})
}

func TestConfig_AnchoredTimes(t *testing.T) {
	t.Parallel()
	req := validUpsertRequest()
	require.NoError(t, req.Validate())

	start, _ := validator.IsValidTimeOfDay(req.Start)
	end, _ := validator.IsValidTimeOfDay(req.End)
	cfg := Config{Start: start, End: end, GracePeriodMinutes: 15}

	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	assert.Equal(t, "2026-03-02T09:00:00+07:00", cfg.StartOn(date, loc).Format("2006-01-02T15:04:05-07:00"))
	assert.Equal(t, "2026-03-02T17:00:00+07:00", cfg.EndOn(date, loc).Format("2006-01-02T15:04:05-07:00"))
	assert.Equal(t, "09:15", cfg.GraceLimitOn(date, loc).Format("15:04"))
}
