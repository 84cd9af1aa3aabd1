package models

import "time"

// DayForecast is an event-based forecast for a single hotel and calendar
// day within the event's span. ForecastDate is the canonical key; the
// 1-based day index inside the event is computed at read time and never
// persisted.
type DayForecast struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	HotelID      uint      `gorm:"not null;uniqueIndex:idx_forecast_hotel_event_date" json:"hotelId"`
	Hotel        Hotel     `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	EventID      uint      `gorm:"not null;uniqueIndex:idx_forecast_hotel_event_date" json:"eventId"`
	Event        Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	ForecastDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_forecast_hotel_event_date" json:"forecastDate"`

	Revenue   *float64 `json:"revenue"`
	ADR       *float64 `json:"adr"`
	Occupancy *float64 `json:"occupancy"`

	Confidence string `json:"confidence"` // high, medium, low
	Notes      string `json:"notes"`
	CreatedBy  uint   `json:"createdBy"`
}
