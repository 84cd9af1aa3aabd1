package validator

import (
	"regexp"
	"time"

	"hotelrev/constants"
	"hotelrev/errors"
	"hotelrev/models"
)

// ValidateUser checks a registration payload.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email address", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password is required", nil)
	}

	if len(user.Password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "password must be at least 8 characters", nil)
	}

	if user.Role != "" {
		switch user.Role {
		case models.RoleUser, models.RoleManager, models.RoleAdmin:
		default:
			return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role: "+user.Role, nil)
		}
	}

	return nil
}

// ValidateHotel checks a hotel payload. TotalRooms must be positive
// because it is the occupancy denominator.
func ValidateHotel(hotel *models.Hotel) error {
	if hotel.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel code is required", nil)
	}

	if hotel.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotel name is required", nil)
	}

	if hotel.TotalRooms <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidInventory, "totalRooms must be positive", nil)
	}

	if hotel.StarRating < 0 || hotel.StarRating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "star rating must be between 0 and 5", nil)
	}

	if hotel.Status != "" {
		switch hotel.Status {
		case constants.HotelStatusActive, constants.HotelStatusInactive, constants.HotelStatusMaintenance:
		default:
			return errors.NewAppError(errors.ErrCodeValidation, "invalid hotel status: "+hotel.Status, nil)
		}
	}

	return nil
}

// ValidateEvent checks an event payload. The span is inclusive and end
// must not precede start.
func ValidateEvent(event *models.Event) error {
	if event.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "event name is required", nil)
	}

	if event.StartDate.IsZero() || event.EndDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "start and end dates are required", nil)
	}

	if event.EndDate.Before(event.StartDate) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "end date must not precede start date", nil)
	}

	if event.ExpectedAttendees < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "expected attendees must not be negative", nil)
	}

	return nil
}

// ValidateDayForecast checks an event forecast payload before the date
// range check against the event span.
func ValidateDayForecast(forecast *models.DayForecast) error {
	if forecast.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotelId is required", nil)
	}

	if forecast.EventID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "eventId is required", nil)
	}

	if forecast.ForecastDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "forecastDate is required", nil)
	}

	if err := validateMetricRanges(forecast.Revenue, forecast.ADR, forecast.Occupancy); err != nil {
		return err
	}

	if forecast.Confidence != "" {
		switch forecast.Confidence {
		case constants.ConfidenceHigh, constants.ConfidenceMedium, constants.ConfidenceLow:
		default:
			return errors.NewAppError(errors.ErrCodeValidation, "invalid confidence: "+forecast.Confidence, nil)
		}
	}

	return nil
}

// ValidateMonthlyForecast checks an event-independent forecast payload.
func ValidateMonthlyForecast(forecast *models.MonthlyForecast) error {
	if forecast.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotelId is required", nil)
	}

	if forecast.Date.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "date is required", nil)
	}

	if err := validateMetricRanges(forecast.Revenue, forecast.ADR, forecast.Occupancy); err != nil {
		return err
	}

	if forecast.RoomNights != nil && *forecast.RoomNights < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "roomNights must not be negative", nil)
	}

	return nil
}

// ValidateDailyActual checks a manually entered actual row.
func ValidateDailyActual(actual *models.DailyActual) error {
	if actual.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hotelId is required", nil)
	}

	if actual.Date.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "date is required", nil)
	}

	for _, v := range []*float64{actual.RevenueTY, actual.STLYRevenue, actual.ResultsLYRevenue,
		actual.ADRTY, actual.STLYADR, actual.ResultsLYADR} {
		if v != nil && *v < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "metric values must not be negative", nil)
		}
	}
	for _, v := range []*int{actual.RoomNightsTY, actual.STLYRoomNights, actual.ResultsLYRoomNights} {
		if v != nil && *v < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "room nights must not be negative", nil)
		}
	}

	return nil
}

// ValidateTask checks a task payload.
func ValidateTask(task *models.Task) error {
	if task.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "task title is required", nil)
	}

	if task.Status != "" {
		switch task.Status {
		case constants.TaskStatusPending, constants.TaskStatusInProgress,
			constants.TaskStatusCompleted, constants.TaskStatusCancelled:
		default:
			return errors.NewAppError(errors.ErrCodeValidation, "invalid task status: "+task.Status, nil)
		}
	}

	if task.Priority != "" {
		switch task.Priority {
		case constants.TaskPriorityLow, constants.TaskPriorityMedium,
			constants.TaskPriorityHigh, constants.TaskPriorityUrgent:
		default:
			return errors.NewAppError(errors.ErrCodeValidation, "invalid task priority: "+task.Priority, nil)
		}
	}

	return nil
}

// ValidateComment checks a comment payload.
func ValidateComment(comment *models.Comment) error {
	if comment.Content == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "comment content is required", nil)
	}

	if comment.EntityType == "" || comment.EntityID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "comment target entity is required", nil)
	}

	return nil
}

// ValidateDateRange parses and orders an inclusive from/to query pair.
func ValidateDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid from date: "+fromStr, err)
	}

	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "invalid to date: "+toStr, err)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "to date precedes from date", nil)
	}

	return from, to, nil
}

func validateMetricRanges(revenue, adr, occupancy *float64) error {
	if revenue != nil && *revenue < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "revenue must not be negative", nil)
	}
	if adr != nil && *adr < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "ADR must not be negative", nil)
	}
	if occupancy != nil && *occupancy < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "occupancy must not be negative", nil)
	}
	return nil
}

// ValidateEmail checks an email address.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email address", nil)
	}
	return nil
}

// ValidatePassword checks password strength.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "password must be at least 8 characters", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
