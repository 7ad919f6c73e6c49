package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

const (
	outcomeSent   = "sent"
	outcomeFailed = "failed"
)

// UseCase use case рассылки напоминаний с кодом подтверждения
type UseCase struct {
	entryRepo    EntryRepository
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	newCode      func() string
	cfg          Config
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	entryRepo EntryRepository,
	notifier Notifier,
	metrics Metrics,
	cfg Config,
	logger Logger,
) (*UseCase, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &UseCase{
		entryRepo:    entryRepo,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		newCode:      uuid.NewString,
		cfg:          cfg,
	}, nil
}

// Execute выбирает предварительные записи, начинающиеся в окне напоминаний,
// выдает каждой новый код подтверждения, отправляет напоминание и отмечает запись.
// Ошибка по одной записи не прерывает проход
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()
	filter := domain.ReminderFilter{
		From:     now.Add(uc.cfg.Lead),
		To:       now.Add(uc.cfg.Lead + uc.cfg.Window),
		Statuses: domain.ReminderStatuses,
		Type:     domain.TypeNormal,
	}

	entries, err := uc.entryRepo.GetReminderEntries(ctx, filter)
	if err != nil {
		uc.logger.Error("SendReminders: failed to get entries: %v", err)
		return nil, fmt.Errorf("%w: failed to get entries: %v", ErrUpstreamUnavailable, err)
	}

	result := &Result{Selected: len(entries)}

	for _, entry := range entries {
		if err := uc.remind(ctx, entry); err != nil {
			uc.logger.Warn("SendReminders: entry id=%d: %v", entry.ID, err)
			uc.metrics.IncReminder(outcomeFailed)
			result.Failed++
			continue
		}
		uc.metrics.IncReminder(outcomeSent)
		result.Sent++
	}

	uc.logger.Info("SendReminders: window %s - %s, selected=%d sent=%d failed=%d",
		filter.From.Format(time.RFC3339), filter.To.Format(time.RFC3339), result.Selected, result.Sent, result.Failed)

	return result, nil
}

func (uc *UseCase) remind(ctx context.Context, entry *domain.ReminderEntry) error {
	code := uc.newCode()

	if err := uc.entryRepo.UpdateConfirmationCode(ctx, entry.ID, code); err != nil {
		return fmt.Errorf("set confirmation code: %w", err)
	}

	if err := uc.notifier.BookingReminder(ctx, entry, code); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	if err := uc.entryRepo.SetReminded(ctx, entry.ID); err != nil {
		return fmt.Errorf("set reminded: %w", err)
	}

	return nil
}

type nopMetrics struct{}

func (nopMetrics) IncReminder(string) {}
