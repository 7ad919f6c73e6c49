package confirm_booking

import (
	"time"

	confirmBooking "github.com/m04kA/SMC-RoomAvailabilityService/internal/usecase/confirm_booking"
)

const displayTimeFormat = "2006-01-02 15:04"

// ConfirmBookingResponse HTTP response подтверждения
type ConfirmBookingResponse struct {
	Confirmation bool   `json:"confirmation"`
	EntryID      int64  `json:"entryId"`
	RoomID       int64  `json:"roomId"`
	Name         string `json:"name"` // название комнаты
	AreaID       int64  `json:"areaId"`
	View         string `json:"view"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response, loc *time.Location) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		Confirmation: true,
		EntryID:      resp.EntryID,
		RoomID:       resp.RoomID,
		Name:         resp.RoomName,
		AreaID:       resp.AreaID,
		View:         resp.DefaultView.String(),
		StartTime:    resp.StartTime.In(loc).Format(displayTimeFormat),
		EndTime:      resp.EndTime.In(loc).Format(displayTimeFormat),
	}
}
