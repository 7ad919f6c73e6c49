package get_rooms_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

// AreaRequest запрос статуса всех комнат области
type AreaRequest struct {
	AreaID    int64
	Timestamp string // Unix-время в секундах
}

// RoomRequest запрос статуса одной комнаты области
type RoomRequest struct {
	AreaID    int64
	RoomID    int64
	Timestamp string // Unix-время в секундах
}

// RoomAvailability статус комнаты в запрошенный час
type RoomAvailability struct {
	RoomID       int64
	RoomNumber   string
	RoomName     string
	Disabled     bool
	Availability bool // false только если комнату занимает запись
	Status       domain.HourStatus
}

// AreaResponse статусы комнат области в порядке sort_key
type AreaResponse struct {
	AreaID    int64
	Timestamp time.Time
	Rooms     []RoomAvailability
}
