package services

import (
	"errors"
	"time"

	"hotelrev/config"
	apperrors "hotelrev/errors"
	"hotelrev/models"

	"gorm.io/gorm"
)

// EventForecastRow is a stored day forecast with its derived 1-based day
// index inside the event span.
type EventForecastRow struct {
	models.DayForecast
	Day int `json:"day"`
}

// UpsertDayForecast writes an event forecast keyed by (hotel, event,
// date). An existing row is overwritten with the supplied fields; absent
// rows are created. The forecast date must fall inside the event span.
func UpsertDayForecast(input models.DayForecast) (models.DayForecast, error) {
	var event models.Event
	if err := config.DB.First(&event, input.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DayForecast{}, apperrors.ErrEventNotFound
		}
		return models.DayForecast{}, err
	}

	if _, err := DayForDate(event, input.ForecastDate); err != nil {
		return models.DayForecast{}, err
	}

	var existing models.DayForecast
	err := config.DB.Where("hotel_id = ? AND event_id = ? AND forecast_date = ?",
		input.HotelID, input.EventID, truncateDay(input.ForecastDate)).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		input.ForecastDate = truncateDay(input.ForecastDate)
		if createErr := config.DB.Create(&input).Error; createErr != nil {
			return models.DayForecast{}, createErr
		}
		return input, nil
	}
	if err != nil {
		return models.DayForecast{}, err
	}

	existing.Revenue = input.Revenue
	existing.ADR = input.ADR
	existing.Occupancy = input.Occupancy
	existing.Confidence = input.Confidence
	existing.Notes = input.Notes
	if err := config.DB.Save(&existing).Error; err != nil {
		return models.DayForecast{}, err
	}
	return existing, nil
}

// ListEventForecasts returns the forecasts of an event, optionally
// filtered by hotel, each annotated with its day index.
func ListEventForecasts(eventID uint, hotelID uint) ([]EventForecastRow, error) {
	var event models.Event
	if err := config.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	query := config.DB.Preload("Hotel").Where("event_id = ?", eventID)
	if hotelID != 0 {
		query = query.Where("hotel_id = ?", hotelID)
	}

	var forecasts []models.DayForecast
	if err := query.Order("hotel_id, forecast_date").Find(&forecasts).Error; err != nil {
		return nil, err
	}

	rows := make([]EventForecastRow, 0, len(forecasts))
	for _, f := range forecasts {
		day, err := DayForDate(event, f.ForecastDate)
		if err != nil {
			// stored date drifted outside the event span after an event
			// edit; surface the row without an index rather than hide it
			day = 0
		}
		rows = append(rows, EventForecastRow{DayForecast: f, Day: day})
	}
	return rows, nil
}

// UpsertMonthlyForecast writes an event-independent forecast keyed by
// (hotel, date).
func UpsertMonthlyForecast(input models.MonthlyForecast) (models.MonthlyForecast, error) {
	var existing models.MonthlyForecast
	err := config.DB.Where("hotel_id = ? AND date = ?",
		input.HotelID, truncateDay(input.Date)).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		input.Date = truncateDay(input.Date)
		if createErr := config.DB.Create(&input).Error; createErr != nil {
			return models.MonthlyForecast{}, createErr
		}
		return input, nil
	}
	if err != nil {
		return models.MonthlyForecast{}, err
	}

	existing.Revenue = input.Revenue
	existing.ADR = input.ADR
	existing.Occupancy = input.Occupancy
	existing.RoomNights = input.RoomNights
	if err := config.DB.Save(&existing).Error; err != nil {
		return models.MonthlyForecast{}, err
	}
	return existing, nil
}

// ListMonthlyForecasts returns a hotel's forecasts inside a date range.
func ListMonthlyForecasts(hotelID uint, from, to time.Time) ([]models.MonthlyForecast, error) {
	var forecasts []models.MonthlyForecast
	err := config.DB.
		Where("hotel_id = ? AND date BETWEEN ? AND ?", hotelID, truncateDay(from), truncateDay(to)).
		Order("date").
		Find(&forecasts).Error
	return forecasts, err
}

// HotelHasForecasts reports whether any forecast references the hotel.
// Hotels with forecasts cannot be deleted.
func HotelHasForecasts(hotelID uint) (bool, error) {
	var count int64
	if err := config.DB.Model(&models.DayForecast{}).
		Where("hotel_id = ?", hotelID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := config.DB.Model(&models.MonthlyForecast{}).
		Where("hotel_id = ?", hotelID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// EventHasForecasts reports whether any day forecast references the
// event. Events with forecasts are soft-deleted instead of removed.
func EventHasForecasts(eventID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.DayForecast{}).
		Where("event_id = ?", eventID).Count(&count).Error
	return count > 0, err
}
