package models

import "time"

// DailyActual holds one day of realized performance for a hotel, together
// with the two historical baselines delivered on the same upload row.
// All metric fields are nullable: a missing cell is data absence, not zero.
// Occupancy is always derived from room-nights and hotel inventory and is
// deliberately not stored.
type DailyActual struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	HotelID   uint      `gorm:"not null;uniqueIndex:idx_actual_hotel_date" json:"hotelId"`
	Hotel     Hotel     `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_actual_hotel_date" json:"date"`

	RevenueTY    *float64 `json:"revenueTy"`
	RoomNightsTY *int     `json:"roomNightsTy"`
	ADRTY        *float64 `json:"adrTy"`

	STLYRevenue    *float64 `json:"stlyRevenue"`
	STLYRoomNights *int     `json:"stlyRoomNights"`
	STLYADR        *float64 `json:"stlyAdr"`

	ResultsLYRevenue    *float64 `json:"resultsLyRevenue"`
	ResultsLYRoomNights *int     `json:"resultsLyRoomNights"`
	ResultsLYADR        *float64 `json:"resultsLyAdr"`

	UploadedBy uint `json:"uploadedBy"`
}
