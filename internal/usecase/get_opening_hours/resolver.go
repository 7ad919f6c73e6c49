package get_opening_hours

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/ptr"
)

// resolveOpenInterval вычисляет фактический интервал работы комнаты на дату.
//
// Если ни одна запись не пересекается с датой, действует недельный шаблон:
// от первого слота до конца последнего. Иначе каждый слот проверяется на занятость:
// первый свободный слот задает открытие, каждый свободный слот сдвигает закрытие на свой конец.
// Занятые слоты внутри интервала его не разрывают.
// Противоречивое окно расписания дает закрытый день, а не ошибку всего диапазона.
func (uc *UseCase) resolveOpenInterval(
	ctx context.Context,
	room *domain.Room,
	date time.Time,
	resolution int,
	closedDays domain.ClosedDays,
) (domain.ResolvedDayHours, error) {
	var result domain.ResolvedDayHours

	window := room.Schedule.ForDay(date)
	if window == nil {
		return result, nil
	}

	slots, err := buildSlots(window, resolution)
	if err != nil {
		uc.logger.Warn("GetOpeningHours: room=%d date=%s resolved as closed: %v",
			room.ID, date.Format(domain.DateFormat), err)
		return result, nil
	}

	if !closedDays.Has(date) {
		result.FirstOpen = ptr.Ptr(slots[0])
		result.LastOpen = ptr.Ptr(slots[len(slots)-1].Add(resolution))
		return result, nil
	}

	for _, slot := range slots {
		occupied, err := uc.entryRepo.IsSlotOccupied(ctx, room.ID, slot.On(date, uc.location))
		if err != nil {
			return domain.ResolvedDayHours{}, fmt.Errorf("%w: probe room=%d date=%s slot=%s: %v",
				ErrUpstreamUnavailable, room.ID, date.Format(domain.DateFormat), slot, err)
		}
		uc.metrics.IncSlotProbe(occupied)

		if occupied {
			continue
		}

		if result.FirstOpen == nil {
			result.FirstOpen = ptr.Ptr(slot)
		}
		result.LastOpen = ptr.Ptr(slot.Add(resolution))
	}

	return result, nil
}
