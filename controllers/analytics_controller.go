package controllers

import (
	"strconv"
	"time"

	"hotelrev/response"
	"hotelrev/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the cached KPI block.
func GetDashboard(c *gin.Context) {
	stats, err := services.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, stats)
}

// GetRevenueByMonth returns a hotel's month-by-month revenue for a year.
func GetRevenueByMonth(c *gin.Context) {
	hotelID, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 || parsed > 2100 {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}

	months, err := services.RevenueByMonth(hotelID, year)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, months)
}

// GetEventVariance reports per-hotel forecast-vs-actual drift for one
// event.
func GetEventVariance(c *gin.Context) {
	eventID, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid event id")
		return
	}

	tie := services.TieBreak(c.DefaultQuery("tieBreak", string(services.TieBreakHotelCode)))

	summaries, err := services.EventVarianceReport(eventID, tie)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, summaries)
}

// GetMonthVariance reports per-hotel drift against monthly forecasts
// for one calendar month.
func GetMonthVariance(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(c, "Invalid month")
			return
		}
		month = time.Month(parsed)
	}

	tie := services.TieBreak(c.DefaultQuery("tieBreak", string(services.TieBreakHotelCode)))

	summaries, err := services.MonthVarianceReport(year, month, tie)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, summaries)
}
