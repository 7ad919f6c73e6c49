package notifier

// Типы событий
const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingReminder  = "booking.reminder"
)

// Event событие о записи, публикуемое в канал Redis
type Event struct {
	Type             string  `json:"type"`
	EntryID          int64   `json:"entry_id"`
	RoomID           int64   `json:"room_id"`
	RoomName         string  `json:"room_name"`
	AreaID           int64   `json:"area_id,omitempty"`
	DefaultView      string  `json:"default_view,omitempty"`
	StartTime        int64   `json:"start_time"`
	EndTime          int64   `json:"end_time"`
	Name             string  `json:"name,omitempty"`
	CreatedBy        string  `json:"create_by,omitempty"`
	ConfirmationCode string  `json:"confirmation_code,omitempty"`
	Lang             *string `json:"lang,omitempty"`
	MailText         *string `json:"mail_text,omitempty"`
	OccurredAt       int64   `json:"occurred_at"`
}
