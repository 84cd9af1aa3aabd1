package controllers

import (
	"strconv"
	"time"

	"hotelrev/builders"
	"hotelrev/config"
	"hotelrev/constants"
	"hotelrev/dto"
	"hotelrev/errors"
	"hotelrev/models"
	"hotelrev/response"
	"hotelrev/services"
	"hotelrev/validator"

	"github.com/gin-gonic/gin"
)

// UpsertDayForecast writes an event forecast for one hotel and day.
// The day can be given as a calendar date or a 1-based index into the
// event span.
func UpsertDayForecast(c *gin.Context) {
	eventID, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid event id")
		return
	}

	var request dto.UpsertDayForecastRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var event models.Event
	if err := config.DB.First(&event, eventID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var forecastDate time.Time
	switch {
	case request.ForecastDate != "":
		parsed, err := time.Parse("2006-01-02", request.ForecastDate)
		if err != nil {
			response.BadRequest(c, "Invalid forecastDate, expected YYYY-MM-DD")
			return
		}
		forecastDate = parsed
	case request.Day != 0:
		resolved, err := services.DateForDay(event, request.Day)
		if err != nil {
			response.ValidationError(c, errors.GetAppError(err).Message)
			return
		}
		forecastDate = resolved
	default:
		response.BadRequest(c, "Either forecastDate or day is required")
		return
	}

	forecast := builders.NewForecastBuilder().
		WithHotel(request.HotelID).
		WithEvent(eventID).
		WithDate(forecastDate).
		WithMetrics(request.Revenue, request.ADR, request.Occupancy).
		WithConfidence(request.Confidence).
		WithNotes(request.Notes).
		WithAuthor(c.GetUint("userID")).
		Build()

	if err := validator.ValidateDayForecast(forecast); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	saved, err := services.UpsertDayForecast(*forecast)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionUpdate, "forecast", saved.ID, nil)

	response.Success(c, saved)
}

// GetEventForecasts lists an event's forecasts with derived day indexes,
// optionally for one hotel.
func GetEventForecasts(c *gin.Context) {
	eventID, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid event id")
		return
	}

	var hotelID uint
	if hotelStr := c.Query("hotelId"); hotelStr != "" {
		parsed, err := strconv.ParseUint(hotelStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "Invalid hotelId")
			return
		}
		hotelID = uint(parsed)
	}

	rows, err := services.ListEventForecasts(eventID, hotelID)
	if err != nil {
		if err == errors.ErrEventNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, rows)
}

// UpsertMonthlyForecast writes an event-independent forecast row.
func UpsertMonthlyForecast(c *gin.Context) {
	var request dto.UpsertMonthlyForecastRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	forecast := models.MonthlyForecast{
		HotelID:    request.HotelID,
		Date:       date,
		Revenue:    request.Revenue,
		ADR:        request.ADR,
		Occupancy:  request.Occupancy,
		RoomNights: request.RoomNights,
		CreatedBy:  c.GetUint("userID"),
	}

	if err := validator.ValidateMonthlyForecast(&forecast); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	saved, err := services.UpsertMonthlyForecast(forecast)
	if err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionUpdate, "monthly_forecast", saved.ID, nil)

	response.Success(c, saved)
}

// GetMonthlyForecasts lists a hotel's monthly forecasts in a range.
func GetMonthlyForecasts(c *gin.Context) {
	hotelID, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	from, to, err := validator.ValidateDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	forecasts, err := services.ListMonthlyForecasts(hotelID, from, to)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, forecasts)
}
