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

// GetActuals lists a hotel's actuals in a date range with derived
// metrics and advisory warnings.
func GetActuals(c *gin.Context) {
	hotelID, ok := paramID(c)
	if !ok {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	from, to, err := validator.ValidateDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.BadRequest(c, errors.GetAppError(err).Message)
		return
	}

	actuals, err := services.ListActuals(hotelID, from, to)
	if err != nil {
		response.ServerError(c)
		return
	}

	metrics, warnings := services.DeriveActualMetrics(hotel, actuals, services.DefaultThresholds())

	response.SuccessWithWarnings(c, gin.H{
		"actuals": actuals,
		"metrics": metrics,
	}, warnings)
}

// UpsertActual writes one actual row for a hotel and date.
func UpsertActual(c *gin.Context) {
	var request dto.UpsertActualRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	actual := models.DailyActual{
		HotelID:             request.HotelID,
		Date:                date,
		RevenueTY:           request.RevenueTY,
		RoomNightsTY:        request.RoomNightsTY,
		ADRTY:               request.ADRTY,
		STLYRevenue:         request.STLYRevenue,
		STLYRoomNights:      request.STLYRoomNights,
		STLYADR:             request.STLYADR,
		ResultsLYRevenue:    request.ResultsLYRevenue,
		ResultsLYRoomNights: request.ResultsLYRoomNights,
		ResultsLYADR:        request.ResultsLYADR,
		UploadedBy:          c.GetUint("userID"),
	}

	if err := validator.ValidateDailyActual(&actual); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	saved, err := services.UpsertDailyActual(actual)
	if err != nil {
		if err == errors.ErrHotelNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var hotel models.Hotel
	var warnings []string
	if err := config.DB.First(&hotel, saved.HotelID).Error; err == nil {
		_, warnings = services.DeriveActualMetrics(hotel, []models.DailyActual{saved}, services.DefaultThresholds())
	}

	_ = services.LogActivity(c.GetUint("userID"), constants.ActionUpdate, "actual", saved.ID, nil)

	response.SuccessWithWarnings(c, saved, warnings)
}

// UploadActuals ingests an xlsx workbook of actuals. Bad rows are
// reported individually while valid rows persist in one transaction.
func UploadActuals(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing upload file")
		return
	}
	defer file.Close()

	userID := c.GetUint("userID")
	result, err := services.ProcessActualsUpload(c.Request.Context(), file, userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(userID, constants.ActionUpload, "actuals", 0, map[string]interface{}{
		"saved":    result.Saved,
		"rejected": len(result.RowErrors),
	})

	response.SuccessWithWarnings(c, result, result.Warnings)
}
