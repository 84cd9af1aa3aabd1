package validator

import (
	"testing"
	"time"

	"hotelrev/errors"
	"hotelrev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestValidateUser(t *testing.T) {
	valid := models.User{Email: "rm@example.com", Password: "longenough", Role: models.RoleManager}
	assert.NoError(t, ValidateUser(&valid))

	missing := models.User{Password: "longenough"}
	requireCode(t, ValidateUser(&missing), errors.ErrCodeRequiredField)

	badEmail := models.User{Email: "not-an-email", Password: "longenough"}
	requireCode(t, ValidateUser(&badEmail), errors.ErrCodeInvalidEmail)

	shortPass := models.User{Email: "rm@example.com", Password: "short"}
	requireCode(t, ValidateUser(&shortPass), errors.ErrCodeInvalidPassword)

	badRole := models.User{Email: "rm@example.com", Password: "longenough", Role: "owner"}
	requireCode(t, ValidateUser(&badRole), errors.ErrCodeInvalidRole)
}

func TestValidateHotel(t *testing.T) {
	valid := models.Hotel{Code: "HAN01", Name: "Lakeside", TotalRooms: 120, StarRating: 4}
	assert.NoError(t, ValidateHotel(&valid))

	noRooms := models.Hotel{Code: "HAN01", Name: "Lakeside", TotalRooms: 0}
	requireCode(t, ValidateHotel(&noRooms), errors.ErrCodeInvalidInventory)

	negativeRooms := models.Hotel{Code: "HAN01", Name: "Lakeside", TotalRooms: -5}
	requireCode(t, ValidateHotel(&negativeRooms), errors.ErrCodeInvalidInventory)

	noCode := models.Hotel{Name: "Lakeside", TotalRooms: 120}
	requireCode(t, ValidateHotel(&noCode), errors.ErrCodeRequiredField)

	badStatus := models.Hotel{Code: "HAN01", Name: "Lakeside", TotalRooms: 120, Status: "closed"}
	requireCode(t, ValidateHotel(&badStatus), errors.ErrCodeValidation)
}

func TestValidateEvent(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	valid := models.Event{Name: "Food Festival", StartDate: start, EndDate: end}
	assert.NoError(t, ValidateEvent(&valid))

	sameDay := models.Event{Name: "One Day", StartDate: start, EndDate: start}
	assert.NoError(t, ValidateEvent(&sameDay))

	reversed := models.Event{Name: "Backwards", StartDate: end, EndDate: start}
	requireCode(t, ValidateEvent(&reversed), errors.ErrCodeInvalidRange)

	unnamed := models.Event{StartDate: start, EndDate: end}
	requireCode(t, ValidateEvent(&unnamed), errors.ErrCodeRequiredField)
}

func TestValidateDayForecast(t *testing.T) {
	valid := models.DayForecast{
		HotelID:      1,
		EventID:      2,
		ForecastDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Revenue:      fptr(10000),
		Confidence:   "high",
	}
	assert.NoError(t, ValidateDayForecast(&valid))

	noEvent := valid
	noEvent.EventID = 0
	requireCode(t, ValidateDayForecast(&noEvent), errors.ErrCodeRequiredField)

	negative := valid
	negative.Revenue = fptr(-1)
	requireCode(t, ValidateDayForecast(&negative), errors.ErrCodeValidation)

	badConfidence := valid
	badConfidence.Confidence = "certain"
	requireCode(t, ValidateDayForecast(&badConfidence), errors.ErrCodeValidation)
}

func TestValidateDailyActualAllowsNilMetrics(t *testing.T) {
	actual := models.DailyActual{
		HotelID: 1,
		Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, ValidateDailyActual(&actual))
}

func TestValidateTask(t *testing.T) {
	valid := models.Task{Title: "Review June forecast", Status: "pending", Priority: "urgent"}
	assert.NoError(t, ValidateTask(&valid))

	untitled := models.Task{Status: "pending"}
	requireCode(t, ValidateTask(&untitled), errors.ErrCodeRequiredField)

	badStatus := models.Task{Title: "x", Status: "paused"}
	requireCode(t, ValidateTask(&badStatus), errors.ErrCodeValidation)
}

func TestValidateComment(t *testing.T) {
	valid := models.Comment{Content: "Looks off", EntityType: "hotel", EntityID: 3}
	assert.NoError(t, ValidateComment(&valid))

	empty := models.Comment{EntityType: "hotel", EntityID: 3}
	requireCode(t, ValidateComment(&empty), errors.ErrCodeRequiredField)

	noTarget := models.Comment{Content: "Looks off"}
	requireCode(t, ValidateComment(&noTarget), errors.ErrCodeRequiredField)
}

func TestValidateDateRange(t *testing.T) {
	from, to, err := ValidateDateRange("2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.True(t, from.Before(to))

	_, _, err = ValidateDateRange("June 1", "2025-06-30")
	requireCode(t, err, errors.ErrCodeInvalidDate)

	_, _, err = ValidateDateRange("2025-06-30", "2025-06-01")
	requireCode(t, err, errors.ErrCodeInvalidRange)
}
