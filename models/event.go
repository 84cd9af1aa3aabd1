package models

import (
	"fmt"
	"time"
)

type Event struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name              string    `gorm:"not null" json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"` // conference, festival, trade-show, sports, concert
	StartDate         time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate           time.Time `gorm:"type:date;not null" json:"endDate"`
	City              string    `gorm:"index" json:"city"`
	Country           string    `json:"country"`
	Location          string    `json:"location"`
	ExpectedAttendees int       `json:"expectedAttendees"`
	SourceURL         string    `json:"sourceUrl"`
	IsActive          bool      `gorm:"default:true" json:"isActive"`
	CreatedBy         uint      `json:"createdBy"`
}

// Duration is the inclusive day count of the event span.
func (e *Event) Duration() int {
	return int(e.EndDate.Sub(e.StartDate).Hours()/24) + 1
}

func (e *Event) ValidateDates() error {
	if e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("event end date %s before start date %s",
			e.EndDate.Format("2006-01-02"), e.StartDate.Format("2006-01-02"))
	}
	return nil
}
