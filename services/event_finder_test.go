package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchParams(types ...string) EventSearchParams {
	return EventSearchParams{
		Location:   "Hanoi, Vietnam",
		EventTypes: types,
		StartDate:  day(2025, 6, 1),
		EndDate:    day(2025, 6, 30),
	}
}

func TestSearchEventsSingleType(t *testing.T) {
	finder := NewEventFinder()

	events := finder.SearchEvents(searchParams("sports"))

	require.NotEmpty(t, events)
	for _, ev := range events {
		assert.Equal(t, "sports", ev.EventType)
		assert.Equal(t, "Hanoi", ev.City)
		assert.False(t, ev.EventDate.Before(day(2025, 6, 1)))
		assert.False(t, ev.EventDate.After(day(2025, 6, 30)))
	}
	assert.Contains(t, events[0].EventName, "Hanoi")
}

func TestSearchEventsAllTypesWhenUnspecified(t *testing.T) {
	finder := NewEventFinder()

	events := finder.SearchEvents(searchParams())

	seen := map[string]bool{}
	for _, ev := range events {
		seen[ev.EventType] = true
	}
	for _, want := range []string{"sports", "concerts", "business", "culture", "community"} {
		assert.True(t, seen[want], want)
	}
}

func TestSearchEventsDeterministic(t *testing.T) {
	finder := NewEventFinder()

	first := finder.SearchEvents(searchParams("concerts"))
	second := finder.SearchEvents(searchParams("concerts"))

	assert.Equal(t, first, second)
}

func TestSearchEventsCityParsedFromLocation(t *testing.T) {
	finder := NewEventFinder()

	events := finder.SearchEvents(EventSearchParams{
		Location:  "Da Nang, Vietnam",
		StartDate: day(2025, 7, 1),
		EndDate:   day(2025, 7, 31),
	})

	require.NotEmpty(t, events)
	assert.Equal(t, "Da Nang", events[0].City)
}

func TestSearchEventsFreeFlag(t *testing.T) {
	finder := NewEventFinder()

	events := finder.SearchEvents(searchParams("community"))

	require.NotEmpty(t, events)
	for _, ev := range events {
		assert.True(t, ev.IsFree)
	}
}

func TestCategorizeEventTitle(t *testing.T) {
	assert.Equal(t, "Sports", CategorizeEventTitle("City Tennis Open"))
	assert.Equal(t, "Concerts", CategorizeEventTitle("Summer Music Nights"))
	assert.Equal(t, "Conference", CategorizeEventTitle("Annual Revenue Summit"))
	assert.Equal(t, "Community", CategorizeEventTitle("Neighborhood potluck"))
}

func TestAddHours(t *testing.T) {
	assert.Equal(t, "14:00", addHours("08:00", 6))
	assert.Equal(t, "01:30", addHours("20:30", 5))
}
