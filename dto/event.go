package dto

type CreateEventRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	StartDate         string `json:"startDate" binding:"required"` // 2006-01-02
	EndDate           string `json:"endDate" binding:"required"`
	City              string `json:"city"`
	Country           string `json:"country"`
	Location          string `json:"location"`
	ExpectedAttendees int    `json:"expectedAttendees"`
	SourceURL         string `json:"sourceUrl"`
}

type UpdateEventRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	Category          *string `json:"category"`
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	City              *string `json:"city"`
	Country           *string `json:"country"`
	Location          *string `json:"location"`
	ExpectedAttendees *int    `json:"expectedAttendees"`
	SourceURL         *string `json:"sourceUrl"`
}

type EventSearchRequest struct {
	Location   string   `json:"location" binding:"required"`
	EventTypes []string `json:"eventTypes"`
	StartDate  string   `json:"startDate" binding:"required"`
	EndDate    string   `json:"endDate" binding:"required"`
}
