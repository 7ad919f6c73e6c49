package domain

import "time"

// EntryStatus represents the status of a booking entry
type EntryStatus int

const (
	StatusConfirmed EntryStatus = 0
	StatusTentative EntryStatus = 4
)

// EntryType represents the kind of a booking entry
type EntryType string

const (
	TypeNormal EntryType = "I"
	TypeClosed EntryType = "C"
)

// BookingEntry represents a booking row of a room
type BookingEntry struct {
	ID               int64
	RoomID           int64
	StartTime        int64 // unix seconds
	EndTime          int64 // unix seconds
	Status           EntryStatus
	Type             EntryType
	ConfirmationCode *string
	CreatedBy        string
	Name             string
	Description      *string
	Reminded         bool
	Lang             *string
}

// Start returns the start of the entry as time.Time
func (e *BookingEntry) Start() time.Time {
	return time.Unix(e.StartTime, 0)
}

// End returns the end of the entry as time.Time
func (e *BookingEntry) End() time.Time {
	return time.Unix(e.EndTime, 0)
}

// IsTentative returns true if the entry awaits confirmation
func (e *BookingEntry) IsTentative() bool {
	return e.Status == StatusTentative
}

// IsConfirmed returns true if the entry is confirmed
func (e *BookingEntry) IsConfirmed() bool {
	return e.Status == StatusConfirmed
}

// IsClosure returns true if the entry withdraws the room (type C)
func (e *BookingEntry) IsClosure() bool {
	return e.Type == TypeClosed
}

// Occupies returns true if the entry covers the instant: start <= t < end
func (e *BookingEntry) Occupies(t time.Time) bool {
	unix := t.Unix()
	return e.StartTime <= unix && unix < e.EndTime
}

// InConfirmationWindow returns true if now is within ConfirmationWindow around the start
func (e *BookingEntry) InConfirmationWindow(now time.Time) bool {
	start := e.Start()
	return !now.Before(start.Add(-ConfirmationWindow)) && !now.After(start.Add(ConfirmationWindow))
}

// EntryWithRoomAndArea entry enriched with room and area data for display and notification
type EntryWithRoomAndArea struct {
	BookingEntry
	RoomName    string
	AreaID      int64
	DefaultView DefaultView
}

// ReminderEntry entry selected for a reminder with room data for the message
type ReminderEntry struct {
	BookingEntry
	RoomNumber      string
	RoomName        string
	RoomNameEnglish *string
	AreaMap         *string
	MailText        *string
	MailTextEnglish *string
}

// ReminderFilter filter for entries that should receive a reminder
type ReminderFilter struct {
	From     time.Time
	To       time.Time
	Statuses []EntryStatus
	Type     EntryType
}
