package entries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	entryRepo "github.com/m04kA/SMC-RoomAvailabilityService/internal/infra/storage/entry"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries/models"
)

// Service сервис для работы с записями бронирования
type Service struct {
	entryRepo EntryRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(entryRepo EntryRepository, logger Logger) *Service {
	return &Service{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// GetEntry получает запись по ID
func (s *Service) GetEntry(ctx context.Context, id int64) (*models.EntryResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entryRepo.ErrEntryNotFound) {
			s.logger.Warn("GetEntry: entry id=%d not found", id)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("GetEntry: repository error for entry id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetEntry - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntry(entry), nil
}

// CheckRoom проверяет, есть ли запись, занимающая комнату в момент now
func (s *Service) CheckRoom(ctx context.Context, roomID int64, now time.Time) (*models.CheckResponse, error) {
	s.logger.Info("CheckRoom: room=%d at %s", roomID, now.Format(time.RFC3339))

	current, err := s.currentEntry(ctx, roomID, now)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &models.CheckResponse{Valid: false}, nil
	}

	return &models.CheckResponse{Valid: true, Reservation: current}, nil
}

// ValidateRoom как CheckRoom, но запись должна быть создана пользователем userID
func (s *Service) ValidateRoom(ctx context.Context, roomID int64, userID string, now time.Time) (*models.CheckResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}

	current, err := s.currentEntry(ctx, roomID, now)
	if err != nil {
		return nil, err
	}
	if current == nil || current.CreatedBy != userID {
		s.logger.Info("ValidateRoom: no entry of user=%s in room=%d", userID, roomID)
		return &models.CheckResponse{Valid: false}, nil
	}

	return &models.CheckResponse{Valid: true, Reservation: current}, nil
}

// ListReminderBookings получает записи для напоминаний в интервале [from, to]
func (s *Service) ListReminderBookings(ctx context.Context, req *models.ReminderBookingsRequest) ([]models.ReminderBookingResponse, error) {
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}
	if len(req.Statuses) == 0 {
		return nil, fmt.Errorf("%w: no statuses", ErrInvalidInput)
	}

	entries, err := s.entryRepo.GetReminderEntries(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListReminderBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReminderBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReminderBookings: found %d entries", len(entries))
	return models.FromDomainReminderList(entries), nil
}

// SetConfirmationCode сохраняет код подтверждения записи
func (s *Service) SetConfirmationCode(ctx context.Context, id int64, code string) error {
	code = strings.TrimSpace(code)
	if id <= 0 || code == "" {
		return fmt.Errorf("%w: id and code are required", ErrInvalidInput)
	}

	if err := s.entryRepo.UpdateConfirmationCode(ctx, id, code); err != nil {
		return s.mapUpdateError("SetConfirmationCode", id, err)
	}

	s.logger.Info("SetConfirmationCode: code set for entry id=%d", id)
	return nil
}

// SetReminded отмечает запись как получившую напоминание
func (s *Service) SetReminded(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.entryRepo.SetReminded(ctx, id); err != nil {
		return s.mapUpdateError("SetReminded", id, err)
	}

	s.logger.Info("SetReminded: entry id=%d marked", id)
	return nil
}

func (s *Service) currentEntry(ctx context.Context, roomID int64, now time.Time) (*models.EntryResponse, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}

	overlapping, err := s.entryRepo.GetOverlapping(ctx, roomID, now)
	if err != nil {
		s.logger.Error("currentEntry: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: currentEntry - repository error: %v", ErrInternal, err)
	}
	if len(overlapping) == 0 {
		return nil, nil
	}

	return models.FromDomainEntry(overlapping[0]), nil
}

func (s *Service) mapUpdateError(op string, id int64, err error) error {
	if errors.Is(err, entryRepo.ErrEntryNotFound) {
		s.logger.Warn("%s: entry id=%d not found", op, id)
		return ErrEntryNotFound
	}
	s.logger.Error("%s: repository error for entry id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
