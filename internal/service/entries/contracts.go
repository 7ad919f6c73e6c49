package entries

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// EntryRepository интерфейс репозитория записей
type EntryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingEntry, error)
	GetOverlapping(ctx context.Context, roomID int64, instant time.Time) ([]*domain.BookingEntry, error)
	GetReminderEntries(ctx context.Context, filter domain.ReminderFilter) ([]*domain.ReminderEntry, error)
	UpdateConfirmationCode(ctx context.Context, id int64, code string) error
	SetReminded(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
