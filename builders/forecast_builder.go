package builders

import (
	"time"

	"hotelrev/models"
)

// ForecastBuilder assembles an event day forecast step by step, used by
// the forecast controller to turn request fields into a model row.
type ForecastBuilder struct {
	forecast *models.DayForecast
}

func NewForecastBuilder() *ForecastBuilder {
	return &ForecastBuilder{
		forecast: &models.DayForecast{},
	}
}

func (b *ForecastBuilder) WithHotel(hotelID uint) *ForecastBuilder {
	b.forecast.HotelID = hotelID
	return b
}

func (b *ForecastBuilder) WithEvent(eventID uint) *ForecastBuilder {
	b.forecast.EventID = eventID
	return b
}

func (b *ForecastBuilder) WithDate(date time.Time) *ForecastBuilder {
	b.forecast.ForecastDate = date
	return b
}

func (b *ForecastBuilder) WithMetrics(revenue, adr, occupancy *float64) *ForecastBuilder {
	b.forecast.Revenue = revenue
	b.forecast.ADR = adr
	b.forecast.Occupancy = occupancy
	return b
}

func (b *ForecastBuilder) WithConfidence(confidence string) *ForecastBuilder {
	b.forecast.Confidence = confidence
	return b
}

func (b *ForecastBuilder) WithNotes(notes string) *ForecastBuilder {
	b.forecast.Notes = notes
	return b
}

func (b *ForecastBuilder) WithAuthor(userID uint) *ForecastBuilder {
	b.forecast.CreatedBy = userID
	return b
}

func (b *ForecastBuilder) Build() *models.DayForecast {
	return b.forecast
}
