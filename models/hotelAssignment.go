package models

import "time"

type HotelAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HotelID    uint      `gorm:"not null;uniqueIndex:idx_assignment_hotel_user" json:"hotelId"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_assignment_hotel_user" json:"userId"`
	Role       string    `json:"role"` // manager, analyst, viewer
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assignedAt"`
}
