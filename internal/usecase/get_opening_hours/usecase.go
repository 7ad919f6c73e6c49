package get_opening_hours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	scheduleStorage "github.com/m04kA/SMC-RoomAvailabilityService/internal/infra/storage/schedule"
)

const (
	scopeDay  = "day"
	scopeWeek = "week"
)

// Config настройки вычисления часов работы
type Config struct {
	Location          *time.Location // Часовой пояс, в котором слоты переводятся в абсолютное время
	DefaultResolution int            // Длина слота в секундах, если у области она не задана
	MaxParallelDays   int            // Сколько дней недели вычисляются одновременно, 0 - без ограничения
}

// UseCase use case вычисления часов работы комнаты на день и на неделю
type UseCase struct {
	scheduleRepo ScheduleRepository
	entryRepo    EntryRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	location          *time.Location
	defaultResolution int
	maxParallelDays   int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	entryRepo EntryRepository,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	location := cfg.Location
	if location == nil {
		location = time.Local
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &UseCase{
		scheduleRepo:      scheduleRepo,
		entryRepo:         entryRepo,
		metrics:           metrics,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
		location:          location,
		defaultResolution: cfg.DefaultResolution,
		maxParallelDays:   cfg.MaxParallelDays,
	}
}

// roomPair комнаты обычного и расширенного расписаний с общей длиной слота
type roomPair struct {
	regular    *domain.Room
	extended   *domain.Room // nil, если расширенного расписания нет
	resolution int
}

// ExecuteDay вычисляет часы работы на одну дату
func (uc *UseCase) ExecuteDay(ctx context.Context, req *Request) (*DayHours, error) {
	started := time.Now()
	defer func() { uc.metrics.ObserveDayHours(scopeDay, time.Since(started)) }()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOpeningHours: validation failed: %v", err)
		return nil, err
	}

	date := uc.dateOnly(req.Date)
	uc.logger.Info("GetOpeningHours: room=%d, extended=%d, date=%s",
		req.RoomID, req.ExtendedRoomID, date.Format(domain.DateFormat))

	rooms, err := uc.loadRooms(ctx, req)
	if err != nil {
		return nil, err
	}

	hours, err := uc.resolveRange(ctx, rooms, date, 1)
	if err != nil {
		uc.logger.Error("GetOpeningHours: failed to resolve room=%d date=%s: %v",
			req.RoomID, date.Format(domain.DateFormat), err)
		return nil, err
	}

	return &hours[0], nil
}

// ExecuteWeek вычисляет часы работы на неделю (понедельник - воскресенье), содержащую дату,
// и на сегодняшний день
func (uc *UseCase) ExecuteWeek(ctx context.Context, req *Request) (*WeekResponse, error) {
	started := time.Now()
	defer func() { uc.metrics.ObserveDayHours(scopeWeek, time.Since(started)) }()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOpeningHours: validation failed: %v", err)
		return nil, err
	}

	date := uc.dateOnly(req.Date)
	weekStart := startOfWeek(date)
	uc.logger.Info("GetOpeningHours: week room=%d, extended=%d, week_start=%s",
		req.RoomID, req.ExtendedRoomID, weekStart.Format(domain.DateFormat))

	rooms, err := uc.loadRooms(ctx, req)
	if err != nil {
		return nil, err
	}

	days, err := uc.resolveRange(ctx, rooms, weekStart, domain.DaysInWeek)
	if err != nil {
		uc.logger.Error("GetOpeningHours: failed to resolve week room=%d week_start=%s: %v",
			req.RoomID, weekStart.Format(domain.DateFormat), err)
		return nil, err
	}

	today := uc.dateOnly(uc.timeProvider.Now().In(uc.location))

	todayHours, found := findDay(days, today)
	if !found {
		todayRange, err := uc.resolveRange(ctx, rooms, today, 1)
		if err != nil {
			uc.logger.Error("GetOpeningHours: failed to resolve today room=%d: %v", req.RoomID, err)
			return nil, err
		}
		todayHours = todayRange[0]
	}

	response := &WeekResponse{
		RoomID:         req.RoomID,
		ExtendedRoomID: req.ExtendedRoomID,
		WeekStart:      weekStart,
		WeekEnd:        weekStart.AddDate(0, 0, domain.DaysInWeek-1),
		NextDate:       date.AddDate(0, 0, domain.DaysInWeek),
		Days:           days,
		Today:          todayHours,
	}

	if !weekStart.Equal(startOfWeek(today)) {
		prev := date.AddDate(0, 0, -domain.DaysInWeek)
		response.PrevDate = &prev
	}

	uc.logger.Info("GetOpeningHours: week resolved room=%d, week_start=%s", req.RoomID, weekStart.Format(domain.DateFormat))

	return response, nil
}

// loadRooms загружает комнаты и длину слота области обычной комнаты
func (uc *UseCase) loadRooms(ctx context.Context, req *Request) (*roomPair, error) {
	regular, err := uc.getRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	pair := &roomPair{regular: regular}

	if req.ExtendedRoomID != 0 {
		pair.extended, err = uc.getRoom(ctx, req.ExtendedRoomID)
		if err != nil {
			return nil, err
		}
	}

	area, err := uc.scheduleRepo.GetArea(ctx, regular.AreaID)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrAreaNotFound) {
			uc.logger.Warn("GetOpeningHours: area id=%d of room id=%d not found", regular.AreaID, regular.ID)
			return nil, fmt.Errorf("%w: area id=%d not found", ErrConfiguration, regular.AreaID)
		}
		uc.logger.Error("GetOpeningHours: failed to get area id=%d: %v", regular.AreaID, err)
		return nil, fmt.Errorf("%w: failed to get area: %v", ErrUpstreamUnavailable, err)
	}

	pair.resolution = area.ResolutionSeconds
	if pair.resolution <= 0 {
		pair.resolution = uc.defaultResolution
	}
	if pair.resolution <= 0 {
		uc.logger.Warn("GetOpeningHours: area id=%d has no resolution and no default is set", area.ID)
		return nil, fmt.Errorf("%w: resolution of area id=%d must be positive", ErrConfiguration, area.ID)
	}

	return pair, nil
}

func (uc *UseCase) getRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := uc.scheduleRepo.GetRoom(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrRoomNotFound) {
			uc.logger.Warn("GetOpeningHours: room id=%d not found", id)
			return nil, fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		uc.logger.Error("GetOpeningHours: failed to get room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrUpstreamUnavailable, err)
	}
	return room, nil
}

// resolveRange вычисляет часы работы для count дней начиная с from.
// Даты с записями загружаются один раз на весь диапазон, дни вычисляются параллельно
func (uc *UseCase) resolveRange(ctx context.Context, rooms *roomPair, from time.Time, count int) ([]DayHours, error) {
	to := from.AddDate(0, 0, count)

	regularClosed, err := uc.getClosedDays(ctx, rooms.regular, from, to)
	if err != nil {
		return nil, err
	}
	extendedClosed, err := uc.getClosedDays(ctx, rooms.extended, from, to)
	if err != nil {
		return nil, err
	}

	days := make([]DayHours, count)

	g, gctx := errgroup.WithContext(ctx)
	if uc.maxParallelDays > 0 {
		g.SetLimit(uc.maxParallelDays)
	}

	for i := 0; i < count; i++ {
		i := i
		date := from.AddDate(0, 0, i)
		g.Go(func() error {
			regular, err := uc.resolveOpenInterval(gctx, rooms.regular, date, rooms.resolution, regularClosed)
			if err != nil {
				return err
			}

			var extended domain.ResolvedDayHours
			if rooms.extended != nil {
				extended, err = uc.resolveOpenInterval(gctx, rooms.extended, date, rooms.resolution, extendedClosed)
				if err != nil {
					return err
				}
			}

			days[i] = mergeSchedules(date, regular, extended)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return days, nil
}

func (uc *UseCase) getClosedDays(ctx context.Context, room *domain.Room, from, to time.Time) (domain.ClosedDays, error) {
	if room == nil {
		return nil, nil
	}

	closed, err := uc.scheduleRepo.GetClosedDays(ctx, room.ID, from, to)
	if err != nil {
		uc.logger.Error("GetOpeningHours: failed to get closed days room=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to get closed days: %v", ErrUpstreamUnavailable, err)
	}
	return closed, nil
}

// dateOnly возвращает полночь календарной даты t в часовом поясе сервиса
func (uc *UseCase) dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, uc.location)
}

// startOfWeek возвращает понедельник недели, содержащей date
func startOfWeek(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

func findDay(days []DayHours, date time.Time) (DayHours, bool) {
	for _, d := range days {
		if d.Date.Equal(date) {
			return d, true
		}
	}
	return DayHours{}, false
}

type nopMetrics struct{}

func (nopMetrics) IncSlotProbe(bool)                     {}
func (nopMetrics) ObserveDayHours(string, time.Duration) {}
