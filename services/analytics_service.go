package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelrev/config"
	apperrors "hotelrev/errors"
	"hotelrev/models"
	"hotelrev/services/logger"

	"gorm.io/gorm"
)

var analyticsLogger = logger.NewDefaultLogger(logger.InfoLevel)

const (
	dashboardCacheKey = "analytics:dashboard"
	dashboardCacheTTL = 10 * time.Minute
)

// DashboardStats is the landing-page KPI block.
type DashboardStats struct {
	HotelCount        int64   `json:"hotelCount"`
	ActiveEventCount  int64   `json:"activeEventCount"`
	OpenTaskCount     int64   `json:"openTaskCount"`
	MonthRevenue      float64 `json:"monthRevenue"`
	MonthRoomNights   int     `json:"monthRoomNights"`
	AvgMonthOccupancy float64 `json:"avgMonthOccupancy"`
	GeneratedAt       string  `json:"generatedAt"`
}

// GetDashboardStats computes the dashboard KPI block for the current
// month, served from cache when fresh.
func GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if config.RedisClient != nil {
		if err := GetFromRedis(ctx, config.RedisClient, dashboardCacheKey, &stats); err == nil && stats.GeneratedAt != "" {
			return stats, nil
		}
	}

	stats, err := ComputeDashboardStats(time.Now())
	if err != nil {
		return DashboardStats{}, err
	}

	if config.RedisClient != nil {
		_ = SetToRedis(ctx, config.RedisClient, dashboardCacheKey, stats, dashboardCacheTTL)
	}
	return stats, nil
}

// ComputeDashboardStats builds the KPI block for the month containing
// now, bypassing the cache.
func ComputeDashboardStats(now time.Time) (DashboardStats, error) {
	stats := DashboardStats{GeneratedAt: now.UTC().Format(time.RFC3339)}

	if err := config.DB.Model(&models.Hotel{}).
		Where("status = ?", "active").Count(&stats.HotelCount).Error; err != nil {
		return stats, err
	}

	today := truncateDay(now)
	if err := config.DB.Model(&models.Event{}).
		Where("is_active = ? AND end_date >= ?", true, today).
		Count(&stats.ActiveEventCount).Error; err != nil {
		return stats, err
	}

	if err := config.DB.Model(&models.Task{}).
		Where("status IN ?", []string{"pending", "in-progress"}).
		Count(&stats.OpenTaskCount).Error; err != nil {
		return stats, err
	}

	first, last := MonthWindow(now.Year(), now.Month())
	var actuals []models.DailyActual
	if err := config.DB.
		Where("date BETWEEN ? AND ?", first, last).
		Find(&actuals).Error; err != nil {
		return stats, err
	}

	var hotels []models.Hotel
	if err := config.DB.Find(&hotels).Error; err != nil {
		return stats, err
	}

	facts := ActualFacts(actuals)
	var occSum float64
	var occCount int
	for _, h := range hotels {
		agg := AggregateFacts(h, facts)
		stats.MonthRevenue += agg.TotalRevenue
		stats.MonthRoomNights += agg.TotalRoomNights
		if agg.DaysWithData > 0 {
			occSum += agg.Occupancy
			occCount++
		}
	}
	stats.MonthRevenue = Round2(stats.MonthRevenue)
	if occCount > 0 {
		stats.AvgMonthOccupancy = Round2(occSum / float64(occCount))
	}

	return stats, nil
}

// MonthRevenue is one month of summed actual revenue for a hotel.
type MonthRevenue struct {
	Month      string  `json:"month"` // 2025-06
	Revenue    float64 `json:"revenue"`
	RoomNights int     `json:"roomNights"`
}

// RevenueByMonth sums a hotel's actuals month by month across a year.
func RevenueByMonth(hotelID uint, year int) ([]MonthRevenue, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	actuals, err := ListActuals(hotelID, start, end)
	if err != nil {
		return nil, err
	}

	months := make([]MonthRevenue, 12)
	for m := 0; m < 12; m++ {
		months[m].Month = fmt.Sprintf("%04d-%02d", year, m+1)
	}
	for _, a := range actuals {
		idx := int(a.Date.Month()) - 1
		if a.RevenueTY != nil {
			months[idx].Revenue += *a.RevenueTY
		}
		if a.RoomNightsTY != nil {
			months[idx].RoomNights += *a.RoomNightsTY
		}
	}
	for m := range months {
		months[m].Revenue = Round2(months[m].Revenue)
	}
	return months, nil
}

// RankHotelsByMetric aggregates every active hotel's actuals over a
// window and ranks them by the selected metric.
func RankHotelsByMetric(from, to time.Time, metric RankMetric, tie TieBreak) ([]HotelAggregate, error) {
	var hotels []models.Hotel
	if err := config.DB.Where("status = ?", "active").Order("code").Find(&hotels).Error; err != nil {
		return nil, err
	}

	var actuals []models.DailyActual
	if err := config.DB.
		Where("date BETWEEN ? AND ?", truncateDay(from), truncateDay(to)).
		Find(&actuals).Error; err != nil {
		return nil, err
	}

	facts := ActualFacts(actuals)
	aggs := make([]HotelAggregate, 0, len(hotels))
	for _, h := range hotels {
		aggs = append(aggs, AggregateFacts(h, facts))
	}

	return RankHotels(aggs, metric, tie), nil
}

// EventVarianceReport compares actuals against the day forecasts of one
// event, per hotel, ranked by revenue drift. Hotels with forecasts but
// no matching actuals stay in the report at zero.
func EventVarianceReport(eventID uint, tie TieBreak) ([]VarianceSummary, error) {
	var event models.Event
	if err := config.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	var forecasts []models.DayForecast
	if err := config.DB.Where("event_id = ?", eventID).Find(&forecasts).Error; err != nil {
		return nil, err
	}

	hotelIDs := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, f := range forecasts {
		if !seen[f.HotelID] {
			seen[f.HotelID] = true
			hotelIDs = append(hotelIDs, f.HotelID)
		}
	}
	if len(hotelIDs) == 0 {
		return []VarianceSummary{}, nil
	}

	var hotels []models.Hotel
	if err := config.DB.Where("id IN ?", hotelIDs).Order("code").Find(&hotels).Error; err != nil {
		return nil, err
	}

	var actuals []models.DailyActual
	if err := config.DB.
		Where("hotel_id IN ? AND date BETWEEN ? AND ?",
			hotelIDs, truncateDay(event.StartDate), truncateDay(event.EndDate)).
		Find(&actuals).Error; err != nil {
		return nil, err
	}

	actualFacts := ActualFacts(actuals)
	forecastFacts := DayForecastFacts(forecasts)

	summaries := make([]VarianceSummary, 0, len(hotels))
	for _, h := range hotels {
		summaries = append(summaries, VarianceByDate(h, actualFacts, forecastFacts))
	}
	return RankVariance(summaries, tie), nil
}

// MonthVarianceReport compares actuals against monthly forecasts across
// a calendar month, per hotel.
func MonthVarianceReport(year int, month time.Month, tie TieBreak) ([]VarianceSummary, error) {
	first, last := MonthWindow(year, month)

	var forecasts []models.MonthlyForecast
	if err := config.DB.Where("date BETWEEN ? AND ?", first, last).Find(&forecasts).Error; err != nil {
		return nil, err
	}

	hotelIDs := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, f := range forecasts {
		if !seen[f.HotelID] {
			seen[f.HotelID] = true
			hotelIDs = append(hotelIDs, f.HotelID)
		}
	}
	if len(hotelIDs) == 0 {
		return []VarianceSummary{}, nil
	}

	var hotels []models.Hotel
	if err := config.DB.Where("id IN ?", hotelIDs).Order("code").Find(&hotels).Error; err != nil {
		return nil, err
	}

	var actuals []models.DailyActual
	if err := config.DB.
		Where("hotel_id IN ? AND date BETWEEN ? AND ?", hotelIDs, first, last).
		Find(&actuals).Error; err != nil {
		return nil, err
	}

	actualFacts := ActualFacts(actuals)
	forecastFacts := MonthlyForecastFacts(forecasts)

	summaries := make([]VarianceSummary, 0, len(hotels))
	for _, h := range hotels {
		summaries = append(summaries, VarianceByDate(h, actualFacts, forecastFacts))
	}
	return RankVariance(summaries, tie), nil
}

// RefreshDashboardCache recomputes and stores the dashboard KPI block.
// The nightly job calls this so the first morning request is warm.
func RefreshDashboardCache(ctx context.Context) error {
	stats, err := ComputeDashboardStats(time.Now())
	if err != nil {
		analyticsLogger.Error("dashboard refresh failed: %v", err)
		return err
	}
	if config.RedisClient == nil {
		return nil
	}
	analyticsLogger.Debug("dashboard cache refreshed at %s", stats.GeneratedAt)
	return SetToRedis(ctx, config.RedisClient, dashboardCacheKey, stats, dashboardCacheTTL)
}

// AnalyticsRefresher adapts the package-level analytics functions for
// the job scheduler.
type AnalyticsRefresher struct{}

func (AnalyticsRefresher) RefreshDashboardCache(ctx context.Context) error {
	return RefreshDashboardCache(ctx)
}
