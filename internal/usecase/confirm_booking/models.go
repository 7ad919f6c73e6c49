package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// Request модель запроса подтверждения
type Request struct {
	Code string // Код подтверждения из напоминания
}

// Response подтвержденная запись с данными для отображения календаря
type Response struct {
	EntryID     int64
	RoomID      int64
	RoomName    string
	AreaID      int64
	DefaultView domain.DefaultView
	Name        string
	StartTime   time.Time
	EndTime     time.Time
}

// fromEntry конвертирует запись с комнатой и областью в ответ
func fromEntry(entry *domain.EntryWithRoomAndArea) *Response {
	return &Response{
		EntryID:     entry.ID,
		RoomID:      entry.RoomID,
		RoomName:    entry.RoomName,
		AreaID:      entry.AreaID,
		DefaultView: entry.DefaultView,
		Name:        entry.Name,
		StartTime:   entry.Start(),
		EndTime:     entry.End(),
	}
}
