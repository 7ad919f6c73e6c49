package confirm_booking

import (
	"context"
	"fmt"
	"time"
)

const (
	outcomeConfirmed     = "confirmed"
	outcomeNotFound      = "not_found"
	outcomeOutsideWindow = "outside_window"
	outcomeConflict      = "conflict"
)

// UseCase use case подтверждения предварительной записи по коду
type UseCase struct {
	entryRepo    EntryRepository
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	entryRepo EntryRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &UseCase{
		entryRepo:    entryRepo,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute подтверждает запись.
//
// Подтвердить можно не раньше и не позже domain.ConfirmationWindow от начала записи.
// Статус меняется одним условным UPDATE, поэтому из двух одновременных запросов
// успешен только один, второй получит ErrConcurrentModification или ErrNotFound.
//
// Если код разделяют несколько записей, UPDATE подтверждает их все и очищает их коды,
// а вызывающий получает ErrConcurrentModification: изменения при этом не откатываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code, err := normalizeCode(req.Code)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	matches, err := uc.entryRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to get entries by code: %v", err)
		return nil, fmt.Errorf("%w: failed to get entries: %v", ErrUpstreamUnavailable, err)
	}

	if len(matches) == 0 {
		uc.logger.Warn("ConfirmBooking: confirmation code not found")
		uc.metrics.IncConfirmation(outcomeNotFound)
		return nil, ErrNotFound
	}

	now := uc.timeProvider.Now()
	for _, entry := range matches {
		if !entry.InConfirmationWindow(now) {
			uc.logger.Warn("ConfirmBooking: entry id=%d starts at %s, now %s is outside the window",
				entry.ID, entry.Start().Format(time.RFC3339), now.Format(time.RFC3339))
			uc.metrics.IncConfirmation(outcomeOutsideWindow)
			return nil, fmt.Errorf("%w: entry id=%d", ErrOutsideConfirmationWindow, entry.ID)
		}
	}

	affected, err := uc.entryRepo.ConfirmByCode(ctx, code)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to confirm entry id=%d: %v", matches[0].ID, err)
		return nil, fmt.Errorf("%w: failed to confirm: %v", ErrUpstreamUnavailable, err)
	}

	if affected != 1 {
		uc.logger.Warn("ConfirmBooking: update changed %d rows for entry id=%d", affected, matches[0].ID)
		uc.metrics.IncConfirmation(outcomeConflict)
		return nil, fmt.Errorf("%w: %d rows changed", ErrConcurrentModification, affected)
	}

	uc.metrics.IncConfirmation(outcomeConfirmed)

	confirmed, err := uc.entryRepo.GetWithRoomAndArea(ctx, matches[0].ID)
	if err != nil {
		uc.logger.Error("ConfirmBooking: entry id=%d confirmed, failed to load room and area: %v", matches[0].ID, err)
		return nil, fmt.Errorf("%w: failed to load confirmed entry: %v", ErrUpstreamUnavailable, err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.BookingConfirmed(ctx, confirmed); err != nil {
			uc.logger.Warn("ConfirmBooking: failed to notify about entry id=%d: %v", confirmed.ID, err)
		}
	}

	uc.logger.Info("ConfirmBooking: entry id=%d confirmed, room=%d", confirmed.ID, confirmed.RoomID)

	return fromEntry(confirmed), nil
}

type nopMetrics struct{}

func (nopMetrics) IncConfirmation(string) {}
