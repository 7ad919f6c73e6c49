package get_opening_hours

import (
	"fmt"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/types"
)

// buildSlots строит решетку слотов дня по окну расписания.
// EndSecond окна - начало последнего слота, поэтому конец решетки = EndSecond + resolution,
// но не позже полуночи: слот, выходящий за конец суток, отбрасывается.
// Окно, в котором не помещается ни одного слота, считается противоречивым расписанием
func buildSlots(window *domain.ScheduleWindow, resolution int) ([]types.SecondOfDay, error) {
	if window == nil {
		return nil, fmt.Errorf("%w: schedule window is absent", ErrConfiguration)
	}

	if resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution must be positive, got %d", ErrConfiguration, resolution)
	}

	startFirst := int(window.StartSecond)
	endLast := int(window.EndSecond.Add(resolution).CapAtDayEnd())

	n := (endLast - startFirst) / resolution
	if n <= 0 {
		return nil, fmt.Errorf("%w: window %s-%s yields no slots at resolution %d",
			ErrConfiguration, window.StartSecond, window.EndSecond, resolution)
	}

	slots := make([]types.SecondOfDay, n)
	for i := range slots {
		slots[i] = window.StartSecond.Add(i * resolution)
	}

	return slots, nil
}
