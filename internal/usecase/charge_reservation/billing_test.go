package charge_reservation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

func tariff(rate, minimum string) domain.Tariff {
	return domain.Tariff{
		RatePerHour:   decimal.RequireFromString(rate),
		MinimumCharge: decimal.RequireFromString(minimum),
	}
}

func TestComputeAmount_PartialHourRoundsUp(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(61 * time.Minute)

	res := &domain.Reservation{
		PlannedStart: start,
		PlannedEnd:   end,
	}

	amount := ComputeAmount(res, tariff("10.00", "0.00"), time.Now())

	assert.Equal(t, "20.00", amount.StringFixed(2))
}

func TestComputeAmount_ReversedIntervalFallsBackToOneHour(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	end := start.Add(-30 * time.Minute)

	res := &domain.Reservation{
		PlannedStart: start,
		PlannedEnd:   end,
	}

	amount := ComputeAmount(res, tariff("15.00", "0.00"), time.Now())

	assert.Equal(t, "15.00", amount.StringFixed(2))
}

func TestComputeAmount_MinimumChargeApplies(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	res := &domain.Reservation{
		PlannedStart: start,
		PlannedEnd:   end,
	}

	amount := ComputeAmount(res, tariff("12.50", "30.00"), time.Now())

	assert.Equal(t, "30.00", amount.StringFixed(2))
}

func TestComputeAmount_ActualBoundsTakePriority(t *testing.T) {
	plannedStart := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	actualStart := plannedStart.Add(30 * time.Minute)
	actualEnd := actualStart.Add(2 * time.Hour)

	res := &domain.Reservation{
		PlannedStart: plannedStart,
		PlannedEnd:   plannedStart.Add(5 * time.Hour),
		ActualStart:  ptr.Ptr(actualStart),
		ActualEnd:    ptr.Ptr(actualEnd),
	}

	amount := ComputeAmount(res, tariff("10.00", "0.00"), time.Now())

	assert.Equal(t, "20.00", amount.StringFixed(2))
}

func TestComputeAmount_MissingEndUsesNow(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	now := start.Add(2*time.Hour + 10*time.Minute)

	res := &domain.Reservation{
		PlannedStart: start,
	}

	amount := ComputeAmount(res, tariff("10.00", "0.00"), now)

	assert.Equal(t, "30.00", amount.StringFixed(2))
}

func TestComputeAmount_SubMinuteIntervalBillsOneHour(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(20 * time.Second)

	res := &domain.Reservation{
		PlannedStart: start,
		PlannedEnd:   end,
	}

	amount := ComputeAmount(res, tariff("10.00", "0.00"), time.Now())

	assert.Equal(t, "10.00", amount.StringFixed(2))
}

func TestComputeAmount_ExactHoursDoNotRoundUp(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	res := &domain.Reservation{
		PlannedStart: start,
		PlannedEnd:   end,
	}

	amount := ComputeAmount(res, tariff("10.00", "0.00"), time.Now())

	assert.Equal(t, "20.00", amount.StringFixed(2))
}

func TestComputeAmount_DeterministicForFixedNow(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	now := start.Add(45 * time.Minute)

	res := &domain.Reservation{
		PlannedStart: start,
	}

	first := ComputeAmount(res, tariff("10.00", "0.00"), now)
	second := ComputeAmount(res, tariff("10.00", "0.00"), now)

	assert.True(t, first.Equal(second))
}
