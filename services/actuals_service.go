package services

import (
	"errors"
	"time"

	"hotelrev/config"
	apperrors "hotelrev/errors"
	"hotelrev/models"

	"gorm.io/gorm"
)

// UpsertDailyActual writes one actual keyed by (hotel, date), overwriting
// the metric fields of an existing row.
func UpsertDailyActual(input models.DailyActual) (models.DailyActual, error) {
	var hotel models.Hotel
	if err := config.DB.First(&hotel, input.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyActual{}, apperrors.ErrHotelNotFound
		}
		return models.DailyActual{}, err
	}

	var existing models.DailyActual
	err := config.DB.Where("hotel_id = ? AND date = ?",
		input.HotelID, truncateDay(input.Date)).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		input.Date = truncateDay(input.Date)
		if createErr := config.DB.Create(&input).Error; createErr != nil {
			return models.DailyActual{}, createErr
		}
		return input, nil
	}
	if err != nil {
		return models.DailyActual{}, err
	}

	existing.RevenueTY = input.RevenueTY
	existing.RoomNightsTY = input.RoomNightsTY
	existing.ADRTY = input.ADRTY
	existing.STLYRevenue = input.STLYRevenue
	existing.STLYRoomNights = input.STLYRoomNights
	existing.STLYADR = input.STLYADR
	existing.ResultsLYRevenue = input.ResultsLYRevenue
	existing.ResultsLYRoomNights = input.ResultsLYRoomNights
	existing.ResultsLYADR = input.ResultsLYADR
	existing.UploadedBy = input.UploadedBy
	if err := config.DB.Save(&existing).Error; err != nil {
		return models.DailyActual{}, err
	}
	return existing, nil
}

// SaveActualsBatch persists a set of validated actuals in one
// transaction. Any storage failure rolls the whole batch back; partial
// persistence never happens here.
func SaveActualsBatch(rows []models.DailyActual) error {
	if len(rows) == 0 {
		return nil
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			row := &rows[i]
			row.Date = truncateDay(row.Date)

			var existing models.DailyActual
			err := tx.Where("hotel_id = ? AND date = ?", row.HotelID, row.Date).
				First(&existing).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				if createErr := tx.Create(row).Error; createErr != nil {
					return createErr
				}
				continue
			}
			if err != nil {
				return err
			}

			existing.RevenueTY = row.RevenueTY
			existing.RoomNightsTY = row.RoomNightsTY
			existing.ADRTY = row.ADRTY
			existing.STLYRevenue = row.STLYRevenue
			existing.STLYRoomNights = row.STLYRoomNights
			existing.STLYADR = row.STLYADR
			existing.ResultsLYRevenue = row.ResultsLYRevenue
			existing.ResultsLYRoomNights = row.ResultsLYRoomNights
			existing.ResultsLYADR = row.ResultsLYADR
			existing.UploadedBy = row.UploadedBy
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListActuals returns a hotel's actuals inside a date range, oldest
// first.
func ListActuals(hotelID uint, from, to time.Time) ([]models.DailyActual, error) {
	var actuals []models.DailyActual
	err := config.DB.
		Where("hotel_id = ? AND date BETWEEN ? AND ?", hotelID, truncateDay(from), truncateDay(to)).
		Order("date").
		Find(&actuals).Error
	return actuals, err
}

// DeriveActualMetrics maps stored actuals through the metric deriver and
// collects advisory warnings for the response.
func DeriveActualMetrics(hotel models.Hotel, actuals []models.DailyActual, thresholds MetricThresholds) ([]DailyMetrics, []string) {
	metrics := make([]DailyMetrics, 0, len(actuals))
	var warnings []string
	for _, a := range actuals {
		m := thresholds.DeriveDaily(a, hotel.TotalRooms)
		for _, flag := range m.Flags {
			warnings = append(warnings, FlagMessage(hotel.Code, a.Date, flag))
		}
		metrics = append(metrics, m)
	}
	return metrics, warnings
}
