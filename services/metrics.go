package services

import (
	"fmt"
	"time"

	"hotelrev/models"

	"github.com/shopspring/decimal"
)

// Consistency flags attached to derived daily metrics. Flags never block
// persistence; they are advisory output for the caller.
const (
	FlagOccupancyExceeds = "occupancy_exceeds_100"
	FlagRevenueMismatch  = "revenue_adr_mismatch"
	FlagLowADR           = "adr_below_threshold"
)

// MetricThresholds configures the consistency checks of the metric
// deriver.
type MetricThresholds struct {
	RevenueTolerance float64 // allowed relative gap between reported and expected revenue
	LowADR           float64 // ADR below this is a warning
}

// DefaultThresholds returns the production thresholds.
func DefaultThresholds() MetricThresholds {
	return MetricThresholds{
		RevenueTolerance: 0.10,
		LowADR:           50,
	}
}

// Round2 rounds to two decimals. Money and percentages go through
// decimal so repeated derivations stay stable.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// OccupancyRate derives the occupancy percentage from sold room-nights
// and the hotel inventory. Missing room-nights or a non-positive
// inventory degrade to 0; absence of data is not an error.
func OccupancyRate(roomNights *int, totalRooms int) float64 {
	if roomNights == nil || totalRooms <= 0 {
		return 0
	}
	return Round2(float64(*roomNights) / float64(totalRooms) * 100)
}

// Variance is the absolute difference of a this-year value against a
// baseline.
func Variance(thisYear, baseline float64) float64 {
	return Round2(thisYear - baseline)
}

// VariancePct is the relative difference in percent. A zero baseline
// yields 0 rather than an error.
func VariancePct(thisYear, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return Round2((thisYear - baseline) / baseline * 100)
}

// ExpectedRevenue reconstructs revenue from occupancy, inventory and ADR.
func ExpectedRevenue(occupancy float64, totalRooms int, adr float64) float64 {
	return occupancy / 100 * float64(totalRooms) * adr
}

// deref treats a missing metric as zero for variance purposes. Averages
// are handled separately and skip nil samples entirely.
func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// DailyMetrics is one reconciled day of derived performance for a hotel.
type DailyMetrics struct {
	Date        time.Time
	Revenue     float64
	RoomNights  int
	ADR         float64
	Occupancy   float64
	HasRevenue  bool
	HasADR      bool
	HasNights   bool
	STLYRevenueVar     float64
	STLYRevenueVarPct  float64
	ResLYRevenueVar    float64
	ResLYRevenueVarPct float64
	STLYADRVar         float64
	ResLYADRVar        float64
	Flags       []string
}

// DeriveDaily turns one stored actual row into derived metrics plus
// consistency flags, using the hotel inventory as the denominator.
func (t MetricThresholds) DeriveDaily(a models.DailyActual, totalRooms int) DailyMetrics {
	m := DailyMetrics{
		Date:       a.Date,
		Revenue:    deref(a.RevenueTY),
		ADR:        deref(a.ADRTY),
		HasRevenue: a.RevenueTY != nil,
		HasADR:     a.ADRTY != nil,
		HasNights:  a.RoomNightsTY != nil,
		Occupancy:  OccupancyRate(a.RoomNightsTY, totalRooms),
	}
	if a.RoomNightsTY != nil {
		m.RoomNights = *a.RoomNightsTY
	}

	m.STLYRevenueVar = Variance(deref(a.RevenueTY), deref(a.STLYRevenue))
	m.STLYRevenueVarPct = VariancePct(deref(a.RevenueTY), deref(a.STLYRevenue))
	m.ResLYRevenueVar = Variance(deref(a.RevenueTY), deref(a.ResultsLYRevenue))
	m.ResLYRevenueVarPct = VariancePct(deref(a.RevenueTY), deref(a.ResultsLYRevenue))
	m.STLYADRVar = Variance(deref(a.ADRTY), deref(a.STLYADR))
	m.ResLYADRVar = Variance(deref(a.ADRTY), deref(a.ResultsLYADR))

	m.Flags = t.checkDay(m, totalRooms)
	return m
}

// checkDay runs the value-range and revenue-consistency checks. Occupancy
// above 100% is reported, never clamped.
func (t MetricThresholds) checkDay(m DailyMetrics, totalRooms int) []string {
	var flags []string

	if m.Occupancy > 100 {
		flags = append(flags, FlagOccupancyExceeds)
	}

	if m.HasADR && m.ADR < t.LowADR && m.ADR > 0 {
		flags = append(flags, FlagLowADR)
	}

	if m.HasRevenue && m.HasADR && m.HasNights && m.ADR > 0 && totalRooms > 0 {
		expected := ExpectedRevenue(m.Occupancy, totalRooms, m.ADR)
		if expected != 0 {
			gap := m.Revenue - expected
			if gap < 0 {
				gap = -gap
			}
			if gap/expected > t.RevenueTolerance {
				flags = append(flags, FlagRevenueMismatch)
			}
		}
	}

	return flags
}

// FlagMessage renders a flag for the advisory warnings list of a
// response.
func FlagMessage(hotelCode string, date time.Time, flag string) string {
	return fmt.Sprintf("%s %s: %s", hotelCode, date.Format("2006-01-02"), flag)
}
