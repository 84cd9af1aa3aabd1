package controllers

import (
	"time"

	"hotelrev/dto"
	"hotelrev/response"
	"hotelrev/services"

	"github.com/gin-gonic/gin"
)

var eventFinder = services.NewEventFinder()

// FindExternalEvents discovers event candidates around a city. Results
// are generated suggestions, not stored events; promote interesting
// ones through the events API.
func FindExternalEvents(c *gin.Context) {
	var request dto.EventSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
		return
	}
	if endDate.Before(startDate) {
		response.BadRequest(c, "endDate precedes startDate")
		return
	}

	events := eventFinder.SearchEvents(services.EventSearchParams{
		Location:   request.Location,
		EventTypes: request.EventTypes,
		StartDate:  startDate,
		EndDate:    endDate,
	})

	response.Success(c, events)
}
