package services

import (
	"sort"
	"time"

	"hotelrev/models"
)

// DailyFact is the normalized per-day record the aggregator consumes.
// Actuals and forecasts both reduce to this shape so the same pipeline
// serves either side of a comparison.
type DailyFact struct {
	HotelID    uint
	Date       time.Time
	Revenue    *float64
	RoomNights *int
	ADR        *float64
	Occupancy  *float64
}

// ActualFacts maps stored actuals to facts. Occupancy stays unset; it is
// derived from room-nights during aggregation.
func ActualFacts(actuals []models.DailyActual) []DailyFact {
	facts := make([]DailyFact, 0, len(actuals))
	for _, a := range actuals {
		facts = append(facts, DailyFact{
			HotelID:    a.HotelID,
			Date:       truncateDay(a.Date),
			Revenue:    a.RevenueTY,
			RoomNights: a.RoomNightsTY,
			ADR:        a.ADRTY,
		})
	}
	return facts
}

// DayForecastFacts maps event forecasts to facts.
func DayForecastFacts(forecasts []models.DayForecast) []DailyFact {
	facts := make([]DailyFact, 0, len(forecasts))
	for _, f := range forecasts {
		facts = append(facts, DailyFact{
			HotelID:   f.HotelID,
			Date:      truncateDay(f.ForecastDate),
			Revenue:   f.Revenue,
			ADR:       f.ADR,
			Occupancy: f.Occupancy,
		})
	}
	return facts
}

// MonthlyForecastFacts maps monthly forecasts to facts.
func MonthlyForecastFacts(forecasts []models.MonthlyForecast) []DailyFact {
	facts := make([]DailyFact, 0, len(forecasts))
	for _, f := range forecasts {
		facts = append(facts, DailyFact{
			HotelID:    f.HotelID,
			Date:       truncateDay(f.Date),
			Revenue:    f.Revenue,
			RoomNights: f.RoomNights,
			ADR:        f.ADR,
			Occupancy:  f.Occupancy,
		})
	}
	return facts
}

// HotelAggregate is the per-hotel rollup over a date window.
type HotelAggregate struct {
	HotelID         uint    `json:"hotelId"`
	HotelCode       string  `json:"hotelCode"`
	HotelName       string  `json:"hotelName"`
	City            string  `json:"city"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalRoomNights int     `json:"totalRoomNights"`
	AvgADR          float64 `json:"avgAdr"`
	Occupancy       float64 `json:"occupancy"`
	DaysWithData    int     `json:"daysWithData"`
	Rank            int     `json:"rank,omitempty"`
}

// AggregateFacts rolls a hotel's facts into one aggregate. ADR averages
// over non-nil samples only: a missing ADR contributes to neither the
// sum nor the count. Occupancy uses inventory times days-with-data as
// the denominator.
func AggregateFacts(hotel models.Hotel, facts []DailyFact) HotelAggregate {
	agg := HotelAggregate{
		HotelID:   hotel.ID,
		HotelCode: hotel.Code,
		HotelName: hotel.Name,
		City:      hotel.City,
	}

	var adrSum float64
	var adrCount int

	for _, f := range facts {
		if f.HotelID != hotel.ID {
			continue
		}
		hasData := false
		if f.Revenue != nil {
			agg.TotalRevenue += *f.Revenue
			hasData = true
		}
		if f.RoomNights != nil {
			agg.TotalRoomNights += *f.RoomNights
			hasData = true
		}
		if f.ADR != nil {
			adrSum += *f.ADR
			adrCount++
			hasData = true
		}
		if f.Occupancy != nil {
			hasData = true
		}
		if hasData {
			agg.DaysWithData++
		}
	}

	if adrCount > 0 {
		agg.AvgADR = Round2(adrSum / float64(adrCount))
	}
	if hotel.TotalRooms > 0 && agg.DaysWithData > 0 {
		agg.Occupancy = Round2(float64(agg.TotalRoomNights) /
			float64(hotel.TotalRooms*agg.DaysWithData) * 100)
	}
	agg.TotalRevenue = Round2(agg.TotalRevenue)
	return agg
}

// RankMetric selects what a ranking sorts by.
type RankMetric string

const (
	RankByRevenue    RankMetric = "revenue"
	RankByRoomNights RankMetric = "roomNights"
	RankByADR        RankMetric = "adr"
	RankByOccupancy  RankMetric = "occupancy"
)

// TieBreak selects the secondary ordering for equal metric values. The
// tie-break is an explicit parameter rather than incidental retrieval
// order.
type TieBreak string

const (
	TieBreakHotelCode TieBreak = "hotelCode" // ascending hotel code
	TieBreakNone      TieBreak = "none"      // stable: retrieval order preserved
)

func metricValue(a HotelAggregate, metric RankMetric) float64 {
	switch metric {
	case RankByRoomNights:
		return float64(a.TotalRoomNights)
	case RankByADR:
		return a.AvgADR
	case RankByOccupancy:
		return a.Occupancy
	default:
		return a.TotalRevenue
	}
}

// RankHotels sorts aggregates descending by the selected metric and
// assigns 1-based ranks. The sort is stable, so with TieBreakNone equal
// hotels keep their retrieval order.
func RankHotels(aggs []HotelAggregate, metric RankMetric, tie TieBreak) []HotelAggregate {
	ranked := make([]HotelAggregate, len(aggs))
	copy(ranked, aggs)

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := metricValue(ranked[i], metric), metricValue(ranked[j], metric)
		if vi != vj {
			return vi > vj
		}
		if tie == TieBreakHotelCode {
			return ranked[i].HotelCode < ranked[j].HotelCode
		}
		return false
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// VarianceSummary reports actual-vs-forecast drift for one hotel.
// Hotels with no matched days report zeros and stay in the output.
type VarianceSummary struct {
	HotelID          uint    `json:"hotelId"`
	HotelCode        string  `json:"hotelCode"`
	HotelName        string  `json:"hotelName"`
	MatchedDays      int     `json:"matchedDays"`
	TotalRevenueDiff float64 `json:"totalRevenueDiff"`
	AvgRevenueDiff   float64 `json:"avgRevenueDiff"`
	AvgADRDiff       float64 `json:"avgAdrDiff"`
	AvgOccupancyDiff float64 `json:"avgOccupancyDiff"`
	Rank             int     `json:"rank,omitempty"`
}

// VarianceByDate pairs a hotel's actual and forecast facts by calendar
// date and averages the signed per-metric differences over the match
// count. Actual occupancy is derived from room-nights; forecast
// occupancy is taken as stored.
func VarianceByDate(hotel models.Hotel, actuals, forecasts []DailyFact) VarianceSummary {
	summary := VarianceSummary{
		HotelID:   hotel.ID,
		HotelCode: hotel.Code,
		HotelName: hotel.Name,
	}

	forecastByDate := make(map[time.Time]DailyFact, len(forecasts))
	for _, f := range forecasts {
		if f.HotelID == hotel.ID {
			forecastByDate[f.Date] = f
		}
	}

	var revSum, adrSum, occSum float64
	for _, a := range actuals {
		if a.HotelID != hotel.ID {
			continue
		}
		f, ok := forecastByDate[a.Date]
		if !ok {
			continue
		}
		summary.MatchedDays++
		revSum += deref(a.Revenue) - deref(f.Revenue)
		adrSum += deref(a.ADR) - deref(f.ADR)

		actualOcc := OccupancyRate(a.RoomNights, hotel.TotalRooms)
		occSum += actualOcc - deref(f.Occupancy)
	}

	if summary.MatchedDays > 0 {
		n := float64(summary.MatchedDays)
		summary.TotalRevenueDiff = Round2(revSum)
		summary.AvgRevenueDiff = Round2(revSum / n)
		summary.AvgADRDiff = Round2(adrSum / n)
		summary.AvgOccupancyDiff = Round2(occSum / n)
	}
	return summary
}

// RankVariance orders variance summaries by average revenue drift,
// descending, with the same explicit tie-break as RankHotels.
func RankVariance(summaries []VarianceSummary, tie TieBreak) []VarianceSummary {
	ranked := make([]VarianceSummary, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AvgRevenueDiff != ranked[j].AvgRevenueDiff {
			return ranked[i].AvgRevenueDiff > ranked[j].AvgRevenueDiff
		}
		if tie == TieBreakHotelCode {
			return ranked[i].HotelCode < ranked[j].HotelCode
		}
		return false
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
