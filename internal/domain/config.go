package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/types"
)

// DefaultView represents the calendar view an area opens with
type DefaultView int

const (
	ViewDay  DefaultView = 0
	ViewWeek DefaultView = 1
)

// String returns the view name
func (v DefaultView) String() string {
	if v == ViewDay {
		return "day"
	}
	return "week"
}

// ScheduleWindow represents the configured hours of a room for one weekday.
// EndSecond is the start of the last slot of the day (MRBS convention),
// the room closes one resolution after it.
type ScheduleWindow struct {
	StartSecond types.SecondOfDay
	EndSecond   types.SecondOfDay
}

// WeeklySchedule per-weekday windows of a room; nil means no hours that day
type WeeklySchedule map[time.Weekday]*ScheduleWindow

// ForDay returns the window configured for the weekday of date
func (w WeeklySchedule) ForDay(date time.Time) *ScheduleWindow {
	if w == nil {
		return nil
	}
	return w[date.Weekday()]
}

// Room represents a bookable room (or an opening-hours calendar of a library)
type Room struct {
	ID         int64
	AreaID     int64
	RoomNumber string
	RoomName   string
	Disabled   bool
	SortKey    string
	Schedule   WeeklySchedule
}

// Area represents a group of rooms sharing slot resolution and opening window
type Area struct {
	ID                   int64
	Name                 string
	ResolutionSeconds    int
	MorningStarts        types.SecondOfDay
	EveningEnds          types.SecondOfDay
	DefaultView          DefaultView
	ReminderEmailEnabled bool
}

// IsWithinWindow returns true if the clock hour of t falls in [MorningStarts, EveningEnds)
func (a *Area) IsWithinWindow(t time.Time) bool {
	hour := t.Hour()
	return hour >= a.MorningStarts.Hour() && hour < a.EveningEnds.Hour()
}

// ClosedDays set of dates ("2006-01-02") overlapped by at least one entry for a room
type ClosedDays map[string]struct{}

// AddSpan marks every date in loc touched by the half-open interval [start, end).
// An entry ending exactly at midnight does not mark the following date.
func (c ClosedDays) AddSpan(start, end time.Time, loc *time.Location) {
	start, end = start.In(loc), end.In(loc)
	if !end.After(start) {
		c[start.Format(DateFormat)] = struct{}{}
		return
	}

	last := end.Add(-time.Nanosecond)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	for !day.After(last) {
		c[day.Format(DateFormat)] = struct{}{}
		day = day.AddDate(0, 0, 1)
	}
}

// Has returns true if the date has an override
func (c ClosedDays) Has(date time.Time) bool {
	if c == nil {
		return false
	}
	_, ok := c[date.Format(DateFormat)]
	return ok
}
