package domain

import "time"

// Engine constants
const (
	// ConfirmationWindow half-width of the confirmation window around an entry start
	ConfirmationWindow = 15 * time.Minute

	// DefaultResolutionSeconds slot length used when an area has no resolution
	DefaultResolutionSeconds = 1800

	// DaysInWeek number of days resolved by the week view
	DaysInWeek = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReminderStatuses statuses of entries that get a confirmation reminder
var ReminderStatuses = []EntryStatus{
	StatusTentative,
}
