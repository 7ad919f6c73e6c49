package send_reminders

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

type mockEntryRepo struct {
	mock.Mock
}

func (m *mockEntryRepo) GetReminderEntries(ctx context.Context, filter domain.ReminderFilter) ([]*domain.ReminderEntry, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]*domain.ReminderEntry)
	return entries, args.Error(1)
}

func (m *mockEntryRepo) UpdateConfirmationCode(ctx context.Context, id int64, code string) error {
	return m.Called(ctx, id, code).Error(0)
}

func (m *mockEntryRepo) SetReminded(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) BookingReminder(ctx context.Context, entry *domain.ReminderEntry, code string) error {
	return m.Called(ctx, entry, code).Error(0)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2025, 5, 6, 8, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, repo *mockEntryRepo, notifier *mockNotifier) *UseCase {
	uc, err := NewUseCase(repo, notifier, nil, Config{Lead: time.Hour, Window: 15 * time.Minute}, nopLogger{})
	require.NoError(t, err)

	uc.timeProvider = fixedTime{now: now}
	seq := 0
	uc.newCode = func() string {
		seq++
		return fmt.Sprintf("code-%d", seq)
	}
	return uc
}

func reminderEntry(id int64) *domain.ReminderEntry {
	return &domain.ReminderEntry{BookingEntry: domain.BookingEntry{ID: id, Status: domain.StatusTentative, Type: domain.TypeNormal}}
}

func TestExecute(t *testing.T) {
	repo := &mockEntryRepo{}
	notifier := &mockNotifier{}
	uc := newUseCase(t, repo, notifier)

	first, second := reminderEntry(1), reminderEntry(2)
	wantFilter := domain.ReminderFilter{
		From:     now.Add(time.Hour),
		To:       now.Add(time.Hour + 15*time.Minute),
		Statuses: []domain.EntryStatus{domain.StatusTentative},
		Type:     domain.TypeNormal,
	}

	repo.On("GetReminderEntries", mock.Anything, wantFilter).Return([]*domain.ReminderEntry{first, second}, nil)
	repo.On("UpdateConfirmationCode", mock.Anything, int64(1), "code-1").Return(nil)
	repo.On("UpdateConfirmationCode", mock.Anything, int64(2), "code-2").Return(nil)
	notifier.On("BookingReminder", mock.Anything, first, "code-1").Return(nil)
	notifier.On("BookingReminder", mock.Anything, second, "code-2").Return(errors.New("redis down"))
	repo.On("SetReminded", mock.Anything, int64(1)).Return(nil)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Result{Selected: 2, Sent: 1, Failed: 1}, result)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	repo.AssertNotCalled(t, "SetReminded", mock.Anything, int64(2))
}

func TestExecute_CodeNotStored(t *testing.T) {
	repo := &mockEntryRepo{}
	notifier := &mockNotifier{}
	uc := newUseCase(t, repo, notifier)

	repo.On("GetReminderEntries", mock.Anything, mock.Anything).Return([]*domain.ReminderEntry{reminderEntry(1)}, nil)
	repo.On("UpdateConfirmationCode", mock.Anything, int64(1), "code-1").Return(errors.New("deadlock"))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	notifier.AssertNotCalled(t, "BookingReminder", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_SelectionFails(t *testing.T) {
	repo := &mockEntryRepo{}
	uc := newUseCase(t, repo, &mockNotifier{})

	repo.On("GetReminderEntries", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestNewUseCase_InvalidConfig(t *testing.T) {
	_, err := NewUseCase(&mockEntryRepo{}, &mockNotifier{}, nil, Config{Lead: time.Hour}, nopLogger{})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewUseCase(&mockEntryRepo{}, &mockNotifier{}, nil, Config{Lead: -time.Minute, Window: time.Minute}, nopLogger{})
	assert.ErrorIs(t, err, ErrConfiguration)
}
