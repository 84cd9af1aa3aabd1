package models

import "time"

// MonthlyForecast is a per-day forecast independent of any event, unique
// per (hotel, date).
type MonthlyForecast struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	HotelID   uint      `gorm:"not null;uniqueIndex:idx_monthly_hotel_date" json:"hotelId"`
	Hotel     Hotel     `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_monthly_hotel_date" json:"date"`

	Revenue    *float64 `json:"revenue"`
	ADR        *float64 `json:"adr"`
	Occupancy  *float64 `json:"occupancy"`
	RoomNights *int     `json:"roomNights"`

	CreatedBy uint `json:"createdBy"`
}
