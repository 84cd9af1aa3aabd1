package controllers

import (
	"time"

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

func parseEventDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// GetEvents lists active events with optional city and category filters.
func GetEvents(c *gin.Context) {
	page, limit := parsePageLimit(c)

	tx := config.DB.Model(&models.Event{}).Where("is_active = ?", true)
	if city := c.Query("city"); city != "" {
		tx = tx.Where("city = ?", city)
	}
	if category := c.Query("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var events []models.Event
	if err := tx.Order("start_date").Offset(page * limit).Limit(limit).Find(&events).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, events, page, limit, int(total))
}

// GetUpcomingEvents returns active events that have not ended yet.
func GetUpcomingEvents(c *gin.Context) {
	var events []models.Event
	err := config.DB.
		Where("is_active = ? AND end_date >= ?", true, time.Now()).
		Order("start_date").
		Limit(20).
		Find(&events).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, events)
}

// SearchEvents finds stored events overlapping a date window, optionally
// in one city. Overlap is inclusive on both ends.
func SearchEvents(c *gin.Context) {
	from, to, err := validator.ValidateDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	tx := config.DB.Where("is_active = ?", true)
	if city := c.Query("city"); city != "" {
		tx = tx.Where("city = ?", city)
	}

	var events []models.Event
	if err := tx.Order("start_date").Find(&events).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, services.EventsOverlappingWindow(events, from, to))
}

// GetEventDetail returns one event with its duration and per-day
// calendar.
func GetEventDetail(c *gin.Context) {
	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{
		"event":    event,
		"duration": event.Duration(),
	})
}

// CreateEvent registers an event.
func CreateEvent(c *gin.Context) {
	var request dto.CreateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := parseEventDate(request.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseEventDate(request.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
		return
	}

	event := models.Event{
		Name:              request.Name,
		Description:       request.Description,
		Category:          request.Category,
		StartDate:         startDate,
		EndDate:           endDate,
		City:              request.City,
		Country:           request.Country,
		Location:          request.Location,
		ExpectedAttendees: request.ExpectedAttendees,
		SourceURL:         request.SourceURL,
		IsActive:          true,
		CreatedBy:         c.GetUint("userID"),
	}

	if err := validator.ValidateEvent(&event); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&event).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionCreate, "event", event.ID, map[string]interface{}{"name": event.Name})

	response.Created(c, event)
}

// UpdateEvent applies partial updates to an event.
func UpdateEvent(c *gin.Context) {
	var request dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != nil {
		event.Name = *request.Name
	}
	if request.Description != nil {
		event.Description = *request.Description
	}
	if request.Category != nil {
		event.Category = *request.Category
	}
	if request.StartDate != nil {
		startDate, err := parseEventDate(*request.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		event.StartDate = startDate
	}
	if request.EndDate != nil {
		endDate, err := parseEventDate(*request.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		event.EndDate = endDate
	}
	if request.City != nil {
		event.City = *request.City
	}
	if request.Country != nil {
		event.Country = *request.Country
	}
	if request.Location != nil {
		event.Location = *request.Location
	}
	if request.ExpectedAttendees != nil {
		event.ExpectedAttendees = *request.ExpectedAttendees
	}
	if request.SourceURL != nil {
		event.SourceURL = *request.SourceURL
	}

	if err := validator.ValidateEvent(&event); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Save(&event).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionUpdate, "event", event.ID, nil)

	response.Success(c, event)
}

// DeleteEvent soft-deletes an event. Events keep their rows so existing
// forecasts stay resolvable.
func DeleteEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid event id")
		return
	}

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	event.IsActive = false
	if err := config.DB.Save(&event).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionDelete, "event", id, map[string]interface{}{"name": event.Name})

	response.Success(c, nil)
}

// GetEventCalendar returns the month calendar with events attached to
// each day. Days may carry several concurrent events.
func GetEventCalendar(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := time.Parse("2006", yearStr)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = parsed.Year()
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := time.Parse("01", monthStr)
		if err != nil {
			response.BadRequest(c, "Invalid month")
			return
		}
		month = parsed.Month()
	}

	first, last := services.MonthWindow(year, month)

	tx := config.DB.Where("is_active = ?", true)
	if city := c.Query("city"); city != "" {
		tx = tx.Where("city = ?", city)
	}

	var events []models.Event
	if err := tx.Find(&events).Error; err != nil {
		response.ServerError(c)
		return
	}

	overlapping := services.EventsOverlappingWindow(events, first, last)
	response.Success(c, services.AttachEventsToDays(first, last, overlapping))
}
