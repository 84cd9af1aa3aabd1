package services

import (
	"testing"
	"time"

	"hotelrev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hotelWithID(id uint, code string, rooms int) models.Hotel {
	h := models.Hotel{Code: code, Name: code, TotalRooms: rooms}
	h.ID = id
	return h
}

func TestAggregateFactsSkipsNilADRSamples(t *testing.T) {
	hotel := hotelWithID(1, "HAN01", 100)
	facts := []DailyFact{
		{HotelID: 1, Date: day(2025, 6, 1), Revenue: fptr(10000), RoomNights: iptr(50), ADR: fptr(120)},
		{HotelID: 1, Date: day(2025, 6, 2), Revenue: fptr(12000), RoomNights: iptr(60)},
		{HotelID: 1, Date: day(2025, 6, 3), Revenue: fptr(8000), RoomNights: iptr(40), ADR: fptr(80)},
	}

	agg := AggregateFacts(hotel, facts)

	// nil ADR on day two is excluded from both the sum and the count
	assert.Equal(t, 100.0, agg.AvgADR)
	assert.Equal(t, 30000.0, agg.TotalRevenue)
	assert.Equal(t, 150, agg.TotalRoomNights)
	assert.Equal(t, 3, agg.DaysWithData)
	assert.Equal(t, 50.0, agg.Occupancy)
}

func TestAggregateFactsOccupancyOverTwoDays(t *testing.T) {
	hotel := hotelWithID(1, "HAN01", 100)
	facts := []DailyFact{
		{HotelID: 1, Date: day(2025, 6, 1), RoomNights: iptr(50)},
		{HotelID: 1, Date: day(2025, 6, 2), RoomNights: iptr(60)},
	}

	agg := AggregateFacts(hotel, facts)

	assert.Equal(t, 55.0, agg.Occupancy)
	assert.Equal(t, 110, agg.TotalRoomNights)
}

func TestAggregateFactsIgnoresOtherHotels(t *testing.T) {
	hotel := hotelWithID(1, "HAN01", 100)
	facts := []DailyFact{
		{HotelID: 1, Date: day(2025, 6, 1), Revenue: fptr(1000)},
		{HotelID: 2, Date: day(2025, 6, 1), Revenue: fptr(9999)},
	}

	agg := AggregateFacts(hotel, facts)

	assert.Equal(t, 1000.0, agg.TotalRevenue)
	assert.Equal(t, 1, agg.DaysWithData)
}

func TestAggregateFactsEmpty(t *testing.T) {
	hotel := hotelWithID(1, "HAN01", 100)

	agg := AggregateFacts(hotel, nil)

	assert.Equal(t, 0.0, agg.TotalRevenue)
	assert.Equal(t, 0.0, agg.AvgADR)
	assert.Equal(t, 0.0, agg.Occupancy)
	assert.Equal(t, 0, agg.DaysWithData)
}

func TestRankHotelsDescendingWithCodeTieBreak(t *testing.T) {
	aggs := []HotelAggregate{
		{HotelCode: "SGN02", TotalRevenue: 5000},
		{HotelCode: "HAN01", TotalRevenue: 8000},
		{HotelCode: "DAD03", TotalRevenue: 5000},
	}

	ranked := RankHotels(aggs, RankByRevenue, TieBreakHotelCode)

	require.Len(t, ranked, 3)
	assert.Equal(t, "HAN01", ranked[0].HotelCode)
	assert.Equal(t, 1, ranked[0].Rank)
	// equal revenue resolves by code ascending
	assert.Equal(t, "DAD03", ranked[1].HotelCode)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "SGN02", ranked[2].HotelCode)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankHotelsStableWithoutTieBreak(t *testing.T) {
	aggs := []HotelAggregate{
		{HotelCode: "SGN02", TotalRevenue: 5000},
		{HotelCode: "DAD03", TotalRevenue: 5000},
	}

	ranked := RankHotels(aggs, RankByRevenue, TieBreakNone)

	assert.Equal(t, "SGN02", ranked[0].HotelCode)
	assert.Equal(t, "DAD03", ranked[1].HotelCode)
}

func TestRankHotelsByOccupancy(t *testing.T) {
	aggs := []HotelAggregate{
		{HotelCode: "A", Occupancy: 60},
		{HotelCode: "B", Occupancy: 85},
	}

	ranked := RankHotels(aggs, RankByOccupancy, TieBreakHotelCode)

	assert.Equal(t, "B", ranked[0].HotelCode)
}

func TestRankHotelsDoesNotMutateInput(t *testing.T) {
	aggs := []HotelAggregate{
		{HotelCode: "A", TotalRevenue: 1},
		{HotelCode: "B", TotalRevenue: 2},
	}

	_ = RankHotels(aggs, RankByRevenue, TieBreakHotelCode)

	assert.Equal(t, "A", aggs[0].HotelCode)
	assert.Equal(t, 0, aggs[0].Rank)
}

func TestVarianceByDatePairsByCalendarDate(t *testing.T) {
	hotel := hotelWithID(1, "HAN01", 100)
	actuals := []DailyFact{
		{HotelID: 1, Date: day(2025, 6, 1), Revenue: fptr(11000), ADR: fptr(110), RoomNights: iptr(55)},
		{HotelID: 1, Date: day(2025, 6, 2), Revenue: fptr(9000), ADR: fptr(90), RoomNights: iptr(45)},
		// no forecast exists for June 3, so this row is unmatched
		{HotelID: 1, Date: day(2025, 6, 3), Revenue: fptr(99999)},
	}
	forecasts := []DailyFact{
		{HotelID: 1, Date: day(2025, 6, 1), Revenue: fptr(10000), ADR: fptr(100), Occupancy: fptr(50)},
		{HotelID: 1, Date: day(2025, 6, 2), Revenue: fptr(10000), ADR: fptr(100), Occupancy: fptr(50)},
	}

	summary := VarianceByDate(hotel, actuals, forecasts)

	assert.Equal(t, 2, summary.MatchedDays)
	assert.Equal(t, 0.0, summary.TotalRevenueDiff)
	assert.Equal(t, 0.0, summary.AvgRevenueDiff)
	assert.Equal(t, 0.0, summary.AvgADRDiff)
	// actual occupancy 55 and 45 against forecast 50 both days
	assert.Equal(t, 0.0, summary.AvgOccupancyDiff)
}

func TestVarianceByDateSignedDiffs(t *testing.T) {
	hotel := hotelWithID(1, "HAN01", 100)
	actuals := []DailyFact{
		{HotelID: 1, Date: day(2025, 6, 1), Revenue: fptr(12000), ADR: fptr(120), RoomNights: iptr(60)},
	}
	forecasts := []DailyFact{
		{HotelID: 1, Date: day(2025, 6, 1), Revenue: fptr(10000), ADR: fptr(100), Occupancy: fptr(50)},
	}

	summary := VarianceByDate(hotel, actuals, forecasts)

	assert.Equal(t, 1, summary.MatchedDays)
	assert.Equal(t, 2000.0, summary.AvgRevenueDiff)
	assert.Equal(t, 20.0, summary.AvgADRDiff)
	assert.Equal(t, 10.0, summary.AvgOccupancyDiff)
}

func TestVarianceByDateZeroMatchesStaysInOutput(t *testing.T) {
	hotel := hotelWithID(7, "DAD03", 80)
	actuals := []DailyFact{
		{HotelID: 7, Date: day(2025, 6, 1), Revenue: fptr(5000)},
	}

	summary := VarianceByDate(hotel, actuals, nil)

	assert.Equal(t, "DAD03", summary.HotelCode)
	assert.Equal(t, 0, summary.MatchedDays)
	assert.Equal(t, 0.0, summary.AvgRevenueDiff)
	assert.Equal(t, 0.0, summary.TotalRevenueDiff)
}

func TestRankVariance(t *testing.T) {
	summaries := []VarianceSummary{
		{HotelCode: "B", AvgRevenueDiff: -500},
		{HotelCode: "A", AvgRevenueDiff: 1200},
		{HotelCode: "C", AvgRevenueDiff: 0},
	}

	ranked := RankVariance(summaries, TieBreakHotelCode)

	assert.Equal(t, "A", ranked[0].HotelCode)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "C", ranked[1].HotelCode)
	assert.Equal(t, "B", ranked[2].HotelCode)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestActualFactsNormalizesDates(t *testing.T) {
	actuals := []models.DailyActual{
		{
			HotelID:      1,
			Date:         time.Date(2025, 6, 1, 15, 30, 0, 0, time.FixedZone("ICT", 7*3600)),
			RevenueTY:    fptr(1000),
			RoomNightsTY: iptr(10),
		},
	}

	facts := ActualFacts(actuals)

	require.Len(t, facts, 1)
	assert.Equal(t, day(2025, 6, 1), facts[0].Date)
	assert.Equal(t, 1000.0, *facts[0].Revenue)
}
