package get_opening_hours

import (
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/types"
)

// mergeSchedules объединяет часы обычного и расширенного расписаний одного дня.
// Итоговый интервал - от самого раннего открытия до самого позднего закрытия,
// отсутствующая сторона не учитывается
func mergeSchedules(date time.Time, regular, extended domain.ResolvedDayHours) DayHours {
	merged := domain.ResolvedDayHours{
		FirstOpen:      minSecond(regular.FirstOpen, extended.FirstOpen),
		LastOpen:       maxSecond(regular.LastOpen, extended.LastOpen),
		IsManned:       regular.FirstOpen != nil,
		IsExtendedOpen: extended.FirstOpen != nil,
	}
	merged.IsClosed = !merged.IsManned && !merged.IsExtendedOpen

	return DayHours{
		Date:          date,
		Regular:       regular,
		Extended:      extended,
		Merged:        merged,
		NeedsFootnote: merged.IsExtendedOpen && merged.IsManned && !regular.SameInterval(extended),
	}
}

func minSecond(a, b *types.SecondOfDay) *types.SecondOfDay {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b < *a:
		return b
	default:
		return a
	}
}

func maxSecond(a, b *types.SecondOfDay) *types.SecondOfDay {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b > *a:
		return b
	default:
		return a
	}
}
