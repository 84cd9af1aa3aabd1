package models

import "time"

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"default:pending" json:"status"`
	Priority    string     `gorm:"default:medium" json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssignedTo  *uint      `json:"assignedTo,omitempty"`
	Assignee    *User      `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	HotelID     *uint      `json:"hotelId,omitempty"`
	Hotel       *Hotel     `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	EventID     *uint      `json:"eventId,omitempty"`
	Event       *Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	CreatedBy   uint       `json:"createdBy"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
