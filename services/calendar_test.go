package services

import (
	"testing"
	"time"

	"hotelrev/errors"
	"hotelrev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testEvent() models.Event {
	return models.Event{
		Name:      "Hanoi Food Festival",
		StartDate: day(2025, 6, 1),
		EndDate:   day(2025, 6, 5),
	}
}

func TestEventDuration(t *testing.T) {
	assert.Equal(t, 5, EventDuration(day(2025, 6, 1), day(2025, 6, 5)))
	assert.Equal(t, 1, EventDuration(day(2025, 6, 1), day(2025, 6, 1)))
}

func TestDayIndexRoundTrip(t *testing.T) {
	ev := testEvent()
	for idx := 1; idx <= 5; idx++ {
		date, err := DateForDay(ev, idx)
		require.NoError(t, err)

		back, err := DayForDate(ev, date)
		require.NoError(t, err)
		assert.Equal(t, idx, back)
	}

	date, err := DateForDay(ev, 3)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 6, 3), date)
}

func TestDateForDayOutOfRange(t *testing.T) {
	ev := testEvent()

	for _, idx := range []int{0, -1, 6} {
		_, err := DateForDay(ev, idx)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeDayOutOfRange, appErr.Code)
	}
}

func TestDayForDateOutsideSpan(t *testing.T) {
	ev := testEvent()

	_, err := DayForDate(ev, day(2025, 5, 31))
	assert.Error(t, err)

	_, err = DayForDate(ev, day(2025, 6, 6))
	assert.Error(t, err)
}

func TestRangesOverlap(t *testing.T) {
	// shared boundary day counts as overlap
	assert.True(t, RangesOverlap(day(2025, 6, 1), day(2025, 6, 5), day(2025, 6, 5), day(2025, 6, 10)))
	assert.True(t, RangesOverlap(day(2025, 6, 3), day(2025, 6, 4), day(2025, 6, 1), day(2025, 6, 10)))
	assert.False(t, RangesOverlap(day(2025, 6, 1), day(2025, 6, 5), day(2025, 6, 6), day(2025, 6, 10)))
}

func TestIntersectRange(t *testing.T) {
	start, end, ok := IntersectRange(day(2025, 6, 3), day(2025, 6, 20), day(2025, 6, 1), day(2025, 6, 10))
	require.True(t, ok)
	assert.Equal(t, day(2025, 6, 3), start)
	assert.Equal(t, day(2025, 6, 10), end)

	_, _, ok = IntersectRange(day(2025, 6, 1), day(2025, 6, 2), day(2025, 6, 5), day(2025, 6, 9))
	assert.False(t, ok)
}

func TestMonthWindow(t *testing.T) {
	first, last := MonthWindow(2025, time.June)
	assert.Equal(t, day(2025, 6, 1), first)
	assert.Equal(t, day(2025, 6, 30), last)

	first, last = MonthWindow(2024, time.February)
	assert.Equal(t, day(2024, 2, 1), first)
	assert.Equal(t, day(2024, 2, 29), last)
}

func TestAttachEventsToDays(t *testing.T) {
	events := []models.Event{
		{Name: "Festival", StartDate: day(2025, 6, 1), EndDate: day(2025, 6, 3)},
		{Name: "Concert", StartDate: day(2025, 6, 3), EndDate: day(2025, 6, 4)},
	}

	days := AttachEventsToDays(day(2025, 6, 1), day(2025, 6, 5), events)
	require.Len(t, days, 5)

	assert.Len(t, days[0].Events, 1)
	// June 3 carries both overlapping events
	assert.Len(t, days[2].Events, 2)
	assert.Len(t, days[3].Events, 1)
	// days without events stay in the calendar
	assert.Empty(t, days[4].Events)
	assert.Equal(t, day(2025, 6, 5), days[4].Date)
}

func TestEventsOverlappingWindow(t *testing.T) {
	events := []models.Event{
		{Name: "Inside", StartDate: day(2025, 6, 10), EndDate: day(2025, 6, 12)},
		{Name: "Straddles", StartDate: day(2025, 5, 28), EndDate: day(2025, 6, 2)},
		{Name: "Outside", StartDate: day(2025, 7, 1), EndDate: day(2025, 7, 3)},
	}

	first, last := MonthWindow(2025, time.June)
	got := EventsOverlappingWindow(events, first, last)

	require.Len(t, got, 2)
	assert.Equal(t, "Inside", got[0].Name)
	assert.Equal(t, "Straddles", got[1].Name)
}
