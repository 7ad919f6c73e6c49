package get_rooms_availability

import (
	getRoomsAvailability "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/get_rooms_availability"
)

// RoomAvailabilityResponse статус комнаты
type RoomAvailabilityResponse struct {
	RoomID       int64  `json:"roomId"`
	RoomNumber   string `json:"roomNumber"`
	RoomName     string `json:"roomName"`
	Disabled     bool   `json:"disabled"`
	Availability bool   `json:"availability"`
	Status       string `json:"status"`
}

// AreaAvailabilityResponse статусы комнат области
type AreaAvailabilityResponse struct {
	AreaID    int64                      `json:"areaId"`
	Timestamp int64                      `json:"timestamp"`
	Rooms     []RoomAvailabilityResponse `json:"rooms"`
}

// FromUseCaseRoom конвертирует статус комнаты use case в HTTP response
func FromUseCaseRoom(room *getRoomsAvailability.RoomAvailability) RoomAvailabilityResponse {
	return RoomAvailabilityResponse{
		RoomID:       room.RoomID,
		RoomNumber:   room.RoomNumber,
		RoomName:     room.RoomName,
		Disabled:     room.Disabled,
		Availability: room.Availability,
		Status:       string(room.Status),
	}
}

// FromUseCaseArea конвертирует ответ use case в HTTP response
func FromUseCaseArea(resp *getRoomsAvailability.AreaResponse) *AreaAvailabilityResponse {
	rooms := make([]RoomAvailabilityResponse, len(resp.Rooms))
	for i := range resp.Rooms {
		rooms[i] = FromUseCaseRoom(&resp.Rooms[i])
	}

	return &AreaAvailabilityResponse{
		AreaID:    resp.AreaID,
		Timestamp: resp.Timestamp.Unix(),
		Rooms:     rooms,
	}
}
