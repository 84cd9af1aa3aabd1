package models

import (
	"fmt"
	"time"
)

type Hotel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Code       string    `gorm:"unique;not null" json:"code"` // short natural key, used in uploads
	Name       string    `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	Address    string    `json:"address"`
	City       string    `gorm:"index" json:"city"`
	Country    string    `json:"country"`
	StarRating int       `json:"starRating"`
	TotalRooms int       `gorm:"not null" json:"totalRooms"` // room inventory, aggregation denominator
	Status     string    `gorm:"default:active" json:"status"`
	OwnerID    uint      `json:"ownerId"`

	Assignments []HotelAssignment `json:"assignments,omitempty" gorm:"foreignKey:HotelID"`
}

// ValidateInventory rejects hotels that cannot serve as an occupancy
// denominator.
func (h *Hotel) ValidateInventory() error {
	if h.TotalRooms <= 0 {
		return fmt.Errorf("invalid totalRooms: %d, must be positive", h.TotalRooms)
	}
	return nil
}

func (h *Hotel) ValidateStatus() error {
	switch h.Status {
	case "active", "inactive", "maintenance":
		return nil
	}
	return fmt.Errorf("invalid status: %q", h.Status)
}
