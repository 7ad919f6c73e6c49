package get_reminder_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries/models"
)

// ToServiceRequest создает запрос сервиса из параметров пути: unix-время from/to, статусы через запятую, тип
func ToServiceRequest(fromStr, toStr, statusStr, typeStr string) (*models.ReminderBookingsRequest, error) {
	from, err := strconv.ParseInt(fromStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	to, err := strconv.ParseInt(toStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	statuses, err := models.ParseStatuses(statusStr)
	if err != nil {
		return nil, err
	}

	entryType, err := models.ParseType(typeStr)
	if err != nil {
		return nil, err
	}

	return &models.ReminderBookingsRequest{
		From:     time.Unix(from, 0),
		To:       time.Unix(to, 0),
		Statuses: statuses,
		Type:     entryType,
	}, nil
}
