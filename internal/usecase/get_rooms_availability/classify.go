package get_rooms_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// classifyHour определяет статус комнаты в момент ts по записям, занимающим этот момент.
//
// Вне часов области комната недоступна, но флаг availability остается true.
// При нескольких записях решает последняя.
func classifyHour(area *domain.Area, entries []*domain.BookingEntry, ts time.Time) (domain.HourStatus, bool) {
	if !area.IsWithinWindow(ts) {
		return domain.HourUnavailable, true
	}

	if len(entries) == 0 {
		return domain.HourFree, true
	}

	entry := entries[len(entries)-1]

	switch {
	case entry.IsConfirmed() && entry.IsClosure():
		return domain.HourUnavailable, false
	case entry.IsConfirmed():
		return domain.HourConfirmed, false
	case entry.IsTentative() && ts.Before(entry.Start().Add(domain.ConfirmationWindow)):
		return domain.HourToBeConfirmed, false
	case entry.IsTentative():
		return domain.HourTentative, false
	default:
		// неизвестный статус записи
		return domain.HourUnavailable, false
	}
}
