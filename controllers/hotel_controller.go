package controllers

import (
	"strconv"
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

func parsePageLimit(c *gin.Context) (int, int) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetHotels lists hotels with optional city/name filters and pagination.
func GetHotels(c *gin.Context) {
	page, limit := parsePageLimit(c)

	tx := config.DB.Model(&models.Hotel{})
	if city := c.Query("city"); city != "" {
		tx = tx.Where("city = ?", city)
	}
	if name := c.Query("name"); name != "" {
		tx = tx.Where("name ILIKE ?", "%"+name+"%")
	}
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var hotels []models.Hotel
	if err := tx.Order("code").Offset(page * limit).Limit(limit).Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, hotels, page, limit, int(total))
}

// GetHotelDetail returns one hotel with its team assignments.
func GetHotelDetail(c *gin.Context) {
	var hotel models.Hotel
	if err := config.DB.Preload("Assignments").First(&hotel, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, hotel)
}

// CreateHotel registers a hotel. The code must be unique and inventory
// positive.
func CreateHotel(c *gin.Context) {
	var request dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hotel := models.Hotel{
		Code:        request.Code,
		Name:        request.Name,
		Description: request.Description,
		Address:     request.Address,
		City:        request.City,
		Country:     request.Country,
		StarRating:  request.StarRating,
		TotalRooms:  request.TotalRooms,
		Status:      constants.HotelStatusActive,
		OwnerID:     c.GetUint("userID"),
	}

	if err := validator.ValidateHotel(&hotel); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var existing models.Hotel
	if err := config.DB.Where("code = ?", hotel.Code).First(&existing).Error; err == nil {
		response.Conflict(c, "Hotel code already in use")
		return
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionCreate, "hotel", hotel.ID, map[string]interface{}{"code": hotel.Code})

	response.Created(c, hotel)
}

// UpdateHotel applies partial updates to a hotel.
func UpdateHotel(c *gin.Context) {
	var request dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != nil {
		hotel.Name = *request.Name
	}
	if request.Description != nil {
		hotel.Description = *request.Description
	}
	if request.Address != nil {
		hotel.Address = *request.Address
	}
	if request.City != nil {
		hotel.City = *request.City
	}
	if request.Country != nil {
		hotel.Country = *request.Country
	}
	if request.StarRating != nil {
		hotel.StarRating = *request.StarRating
	}
	if request.TotalRooms != nil {
		hotel.TotalRooms = *request.TotalRooms
	}
	if request.Status != nil {
		hotel.Status = *request.Status
	}

	if err := validator.ValidateHotel(&hotel); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionUpdate, "hotel", hotel.ID, nil)

	response.Success(c, hotel)
}

// DeleteHotel removes a hotel unless forecasts reference it.
func DeleteHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	hasForecasts, err := services.HotelHasForecasts(id)
	if err != nil {
		response.ServerError(c)
		return
	}
	if hasForecasts {
		response.Conflict(c, "Hotel has forecasts and cannot be deleted")
		return
	}

	if err := config.DB.Delete(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionDelete, "hotel", id, map[string]interface{}{"code": hotel.Code})

	response.Success(c, nil)
}

// AssignHotel adds a user to the hotel's team.
func AssignHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var request dto.AssignHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	assignment := models.HotelAssignment{
		HotelID: id,
		UserID:  request.UserID,
		Role:    request.Role,
	}
	if err := config.DB.Create(&assignment).Error; err != nil {
		response.Conflict(c, "User is already assigned to this hotel")
		return
	}

	response.Created(c, assignment)
}

// GetTopHotels ranks hotels by a selectable metric over a date window.
// Defaults to revenue over the current month.
func GetTopHotels(c *gin.Context) {
	now := time.Now()
	from, to := services.MonthWindow(now.Year(), now.Month())

	if fromStr, toStr := c.Query("from"), c.Query("to"); fromStr != "" && toStr != "" {
		parsedFrom, parsedTo, err := validator.ValidateDateRange(fromStr, toStr)
		if err != nil {
			response.BadRequest(c, errors.GetAppError(err).Message)
			return
		}
		from, to = parsedFrom, parsedTo
	}

	metric := services.RankMetric(c.DefaultQuery("metric", string(services.RankByRevenue)))
	tie := services.TieBreak(c.DefaultQuery("tieBreak", string(services.TieBreakHotelCode)))

	ranked, err := services.RankHotelsByMetric(from, to, metric, tie)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ranked)
}
