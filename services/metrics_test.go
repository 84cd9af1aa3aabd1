package services

import (
	"testing"
	"time"

	"hotelrev/models"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(iptr(0), 100))
	assert.Equal(t, 50.0, OccupancyRate(iptr(50), 100))
	assert.Equal(t, 150.0, OccupancyRate(iptr(150), 100))
	assert.Equal(t, 55.0, OccupancyRate(iptr(110), 200))
}

func TestOccupancyRateDegradesToZero(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(nil, 100))
	assert.Equal(t, 0.0, OccupancyRate(iptr(40), 0))
	assert.Equal(t, 0.0, OccupancyRate(iptr(40), -5))
}

func TestVariancePct(t *testing.T) {
	assert.Equal(t, 10.0, VariancePct(110, 100))
	assert.Equal(t, -10.0, VariancePct(90, 100))
	assert.Equal(t, 0.0, VariancePct(42, 0))
}

func TestVariance(t *testing.T) {
	assert.Equal(t, 15.5, Variance(115.5, 100))
	assert.Equal(t, -20.0, Variance(80, 100))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(100.0/3.0))
	assert.Equal(t, 66.67, Round2(200.0/3.0))
	assert.Equal(t, 10.0, Round2(10))
}

func TestDeriveDailyBasic(t *testing.T) {
	actual := models.DailyActual{
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		RevenueTY:    fptr(10000),
		RoomNightsTY: iptr(50),
		ADRTY:        fptr(200),
		STLYRevenue:  fptr(9000),
		STLYADR:      fptr(180),
	}

	m := DefaultThresholds().DeriveDaily(actual, 100)

	assert.Equal(t, 50.0, m.Occupancy)
	assert.Equal(t, 10000.0, m.Revenue)
	assert.Equal(t, 1000.0, m.STLYRevenueVar)
	assert.Equal(t, 11.11, m.STLYRevenueVarPct)
	assert.Equal(t, 20.0, m.STLYADRVar)
	assert.Empty(t, m.Flags)
}

func TestDeriveDailyNilBaselines(t *testing.T) {
	actual := models.DailyActual{
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		RevenueTY:    fptr(5000),
		RoomNightsTY: iptr(40),
		ADRTY:        fptr(125),
	}

	m := DefaultThresholds().DeriveDaily(actual, 100)

	assert.Equal(t, 5000.0, m.STLYRevenueVar)
	assert.Equal(t, 0.0, m.STLYRevenueVarPct)
	assert.Equal(t, 0.0, m.ResLYRevenueVarPct)
	assert.True(t, m.HasRevenue)
	assert.True(t, m.HasNights)
}

func TestDeriveDailyFlagsOverOccupancy(t *testing.T) {
	actual := models.DailyActual{
		Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		RevenueTY:    fptr(30000),
		RoomNightsTY: iptr(150),
		ADRTY:        fptr(200),
	}

	m := DefaultThresholds().DeriveDaily(actual, 100)

	assert.Equal(t, 150.0, m.Occupancy)
	assert.Contains(t, m.Flags, FlagOccupancyExceeds)
}

func TestDeriveDailyFlagsLowADR(t *testing.T) {
	actual := models.DailyActual{
		Date:         time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		RevenueTY:    fptr(1800),
		RoomNightsTY: iptr(40),
		ADRTY:        fptr(45),
	}

	m := DefaultThresholds().DeriveDaily(actual, 100)

	assert.Contains(t, m.Flags, FlagLowADR)
}

func TestDeriveDailyFlagsRevenueMismatch(t *testing.T) {
	// expected revenue: 50% of 100 rooms at ADR 200 = 10000; reported 20000
	actual := models.DailyActual{
		Date:         time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		RevenueTY:    fptr(20000),
		RoomNightsTY: iptr(50),
		ADRTY:        fptr(200),
	}

	m := DefaultThresholds().DeriveDaily(actual, 100)

	assert.Contains(t, m.Flags, FlagRevenueMismatch)
}

func TestDeriveDailyRevenueWithinTolerance(t *testing.T) {
	// expected 10000, reported 10500: a 5% gap stays inside the 10% band
	actual := models.DailyActual{
		Date:         time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		RevenueTY:    fptr(10500),
		RoomNightsTY: iptr(50),
		ADRTY:        fptr(200),
	}

	m := DefaultThresholds().DeriveDaily(actual, 100)

	assert.NotContains(t, m.Flags, FlagRevenueMismatch)
}

func TestDeriveDailyNoMismatchCheckWithMissingFields(t *testing.T) {
	actual := models.DailyActual{
		Date:         time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		RevenueTY:    fptr(20000),
		RoomNightsTY: iptr(50),
	}

	m := DefaultThresholds().DeriveDaily(actual, 100)

	assert.NotContains(t, m.Flags, FlagRevenueMismatch)
}

func TestFlagMessage(t *testing.T) {
	msg := FlagMessage("HAN01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), FlagLowADR)
	assert.Equal(t, "HAN01 2025-06-01: adr_below_threshold", msg)
}
