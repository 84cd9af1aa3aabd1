package dto

// UpsertDayForecastRequest targets a day either by calendar date or by
// 1-based day index within the event. Exactly one of the two is used;
// the date wins when both are sent.
type UpsertDayForecastRequest struct {
	HotelID      uint     `json:"hotelId" binding:"required"`
	ForecastDate string   `json:"forecastDate"`
	Day          int      `json:"day"`
	Revenue      *float64 `json:"revenue"`
	ADR          *float64 `json:"adr"`
	Occupancy    *float64 `json:"occupancy"`
	Confidence   string   `json:"confidence"`
	Notes        string   `json:"notes"`
}

type UpsertMonthlyForecastRequest struct {
	HotelID    uint     `json:"hotelId" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Revenue    *float64 `json:"revenue"`
	ADR        *float64 `json:"adr"`
	Occupancy  *float64 `json:"occupancy"`
	RoomNights *int     `json:"roomNights"`
}
