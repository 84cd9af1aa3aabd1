package services

import (
	"time"

	"hotelrev/errors"
	"hotelrev/models"
)

// truncateDay normalizes to midnight UTC so date math is stable across
// whatever timezone the driver handed back.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EventDuration is the inclusive day count between start and end.
func EventDuration(start, end time.Time) int {
	return int(truncateDay(end).Sub(truncateDay(start)).Hours()/24) + 1
}

// DateForDay resolves the calendar date of the 1-based day index within
// an event. Indices outside [1, duration] are validation errors.
func DateForDay(event models.Event, day int) (time.Time, error) {
	duration := EventDuration(event.StartDate, event.EndDate)
	if day < 1 || day > duration {
		return time.Time{}, errors.NewAppError(errors.ErrCodeDayOutOfRange,
			"day index outside event span", nil)
	}
	return truncateDay(event.StartDate).AddDate(0, 0, day-1), nil
}

// DayForDate is the inverse of DateForDay: the 1-based index of date
// within the event span.
func DayForDate(event models.Event, date time.Time) (int, error) {
	day := int(truncateDay(date).Sub(truncateDay(event.StartDate)).Hours()/24) + 1
	duration := EventDuration(event.StartDate, event.EndDate)
	if day < 1 || day > duration {
		return 0, errors.NewAppError(errors.ErrCodeDayOutOfRange,
			"date outside event span", nil)
	}
	return day, nil
}

// RangesOverlap reports whether two inclusive date ranges intersect.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !truncateDay(aStart).After(truncateDay(bEnd)) &&
		!truncateDay(aEnd).Before(truncateDay(bStart))
}

// IntersectRange clips [aStart,aEnd] to [bStart,bEnd]. ok is false when
// the ranges do not touch.
func IntersectRange(aStart, aEnd, bStart, bEnd time.Time) (start, end time.Time, ok bool) {
	if !RangesOverlap(aStart, aEnd, bStart, bEnd) {
		return time.Time{}, time.Time{}, false
	}
	start = truncateDay(aStart)
	if b := truncateDay(bStart); b.After(start) {
		start = b
	}
	end = truncateDay(aEnd)
	if b := truncateDay(bEnd); b.Before(end) {
		end = b
	}
	return start, end, true
}

// MonthWindow returns the first and last day of a calendar month.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DayEvents is one calendar day with every event covering it. A day may
// carry several concurrent events; the reconciler does not force mutual
// exclusion.
type DayEvents struct {
	Date   time.Time
	Events []models.Event
}

// AttachEventsToDays walks the window day by day and collects the events
// whose span covers each day. Days without events are included with an
// empty slice so callers can render a full calendar.
func AttachEventsToDays(windowStart, windowEnd time.Time, events []models.Event) []DayEvents {
	windowStart = truncateDay(windowStart)
	windowEnd = truncateDay(windowEnd)

	var days []DayEvents
	for d := windowStart; !d.After(windowEnd); d = d.AddDate(0, 0, 1) {
		entry := DayEvents{Date: d}
		for _, ev := range events {
			if RangesOverlap(d, d, ev.StartDate, ev.EndDate) {
				entry.Events = append(entry.Events, ev)
			}
		}
		days = append(days, entry)
	}
	return days
}

// EventsOverlappingWindow filters events down to those intersecting the
// window. Ordering of the input is preserved.
func EventsOverlappingWindow(events []models.Event, windowStart, windowEnd time.Time) []models.Event {
	var out []models.Event
	for _, ev := range events {
		if RangesOverlap(ev.StartDate, ev.EndDate, windowStart, windowEnd) {
			out = append(out, ev)
		}
	}
	return out
}
