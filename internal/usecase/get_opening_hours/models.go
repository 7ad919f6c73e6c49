package get_opening_hours

import (
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// Request модель запроса часов работы
type Request struct {
	RoomID         int64     // ID комнаты с обычным (обслуживаемым) расписанием
	ExtendedRoomID int64     // ID комнаты с расширенным расписанием, 0 - расширенного нет
	Date           time.Time // Дата (время не учитывается)
}

// DayHours часы работы одного дня
type DayHours struct {
	Date          time.Time
	Regular       domain.ResolvedDayHours
	Extended      domain.ResolvedDayHours
	Merged        domain.ResolvedDayHours
	NeedsFootnote bool // Расширенные часы открыты и отличаются от обычных
}

// WeekResponse часы работы недели с понедельника по воскресенье
type WeekResponse struct {
	RoomID         int64
	ExtendedRoomID int64
	WeekStart      time.Time
	WeekEnd        time.Time  // Воскресенье
	PrevDate       *time.Time // nil, если запрошена текущая неделя
	NextDate       time.Time
	Days           []DayHours
	Today          DayHours
}
