package get_rooms_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	scheduleStorage "github.com/m04kA/SMC-RoomAvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case определения статуса комнат в заданный час
type UseCase struct {
	scheduleRepo ScheduleRepository
	entryRepo    EntryRepository
	metrics      Metrics
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	entryRepo EntryRepository,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &UseCase{
		scheduleRepo: scheduleRepo,
		entryRepo:    entryRepo,
		metrics:      metrics,
		location:     location,
		logger:       logger,
	}
}

// ExecuteArea определяет статус всех комнат области
func (uc *UseCase) ExecuteArea(ctx context.Context, req *AreaRequest) (*AreaResponse, error) {
	if err := validateArea(req.AreaID); err != nil {
		uc.logger.Warn("GetRoomsAvailability: validation failed: %v", err)
		return nil, err
	}

	ts, err := parseTimestamp(req.Timestamp, uc.location)
	if err != nil {
		uc.logger.Warn("GetRoomsAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetRoomsAvailability: area=%d, at=%s", req.AreaID, ts.Format(time.RFC3339))

	area, err := uc.getArea(ctx, req.AreaID)
	if err != nil {
		return nil, err
	}

	rooms, err := uc.scheduleRepo.GetRoomsByArea(ctx, req.AreaID)
	if err != nil {
		uc.logger.Error("GetRoomsAvailability: failed to get rooms of area id=%d: %v", req.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrUpstreamUnavailable, err)
	}

	result := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		availability, err := uc.classifyRoom(ctx, area, room, ts)
		if err != nil {
			return nil, err
		}
		result = append(result, availability)
	}

	uc.logger.Info("GetRoomsAvailability: classified %d rooms of area=%d", len(result), req.AreaID)

	return &AreaResponse{
		AreaID:    req.AreaID,
		Timestamp: ts,
		Rooms:     result,
	}, nil
}

// ExecuteRoom определяет статус одной комнаты области
func (uc *UseCase) ExecuteRoom(ctx context.Context, req *RoomRequest) (*RoomAvailability, error) {
	if err := validateArea(req.AreaID); err != nil {
		uc.logger.Warn("GetRoomsAvailability: validation failed: %v", err)
		return nil, err
	}
	if req.RoomID <= 0 {
		uc.logger.Warn("GetRoomsAvailability: invalid room id=%d", req.RoomID)
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	ts, err := parseTimestamp(req.Timestamp, uc.location)
	if err != nil {
		uc.logger.Warn("GetRoomsAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetRoomsAvailability: area=%d, room=%d, at=%s", req.AreaID, req.RoomID, ts.Format(time.RFC3339))

	area, err := uc.getArea(ctx, req.AreaID)
	if err != nil {
		return nil, err
	}

	room, err := uc.scheduleRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomsAvailability: room id=%d not found", req.RoomID)
			return nil, fmt.Errorf("%w: room id=%d", ErrNotFound, req.RoomID)
		}
		uc.logger.Error("GetRoomsAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrUpstreamUnavailable, err)
	}

	if room.AreaID != area.ID {
		uc.logger.Warn("GetRoomsAvailability: room id=%d does not belong to area id=%d", room.ID, area.ID)
		return nil, fmt.Errorf("%w: room id=%d is not in area id=%d", ErrNotFound, room.ID, area.ID)
	}

	availability, err := uc.classifyRoom(ctx, area, room, ts)
	if err != nil {
		return nil, err
	}

	return &availability, nil
}

func (uc *UseCase) getArea(ctx context.Context, id int64) (*domain.Area, error) {
	area, err := uc.scheduleRepo.GetArea(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrAreaNotFound) {
			uc.logger.Warn("GetRoomsAvailability: area id=%d not found", id)
			return nil, fmt.Errorf("%w: area id=%d", ErrNotFound, id)
		}
		uc.logger.Error("GetRoomsAvailability: failed to get area id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrUpstreamUnavailable, err)
	}
	return area, nil
}

func (uc *UseCase) classifyRoom(ctx context.Context, area *domain.Area, room *domain.Room, ts time.Time) (RoomAvailability, error) {
	entries, err := uc.entryRepo.GetOverlapping(ctx, room.ID, ts)
	if err != nil {
		uc.logger.Error("GetRoomsAvailability: failed to get entries of room id=%d: %v", room.ID, err)
		return RoomAvailability{}, fmt.Errorf("%w: failed to get entries: %v", ErrUpstreamUnavailable, err)
	}

	status, available := classifyHour(area, entries, ts)
	uc.metrics.IncHourStatus(string(status))

	return RoomAvailability{
		RoomID:       room.ID,
		RoomNumber:   room.RoomNumber,
		RoomName:     room.RoomName,
		Disabled:     room.Disabled,
		Availability: available,
		Status:       status,
	}, nil
}

type nopMetrics struct{}

func (nopMetrics) IncHourStatus(string) {}
