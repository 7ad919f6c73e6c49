package entries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	entryRepo "github.com/m04kA/SMC-RoomAvailabilityService/internal/infra/storage/entry"
	"github.com/m04kA/SMC-RoomAvailabilityService/internal/service/entries/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.BookingEntry, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*domain.BookingEntry)
	return entry, args.Error(1)
}

func (m *mockRepo) GetOverlapping(ctx context.Context, roomID int64, instant time.Time) ([]*domain.BookingEntry, error) {
	args := m.Called(ctx, roomID, instant)
	entries, _ := args.Get(0).([]*domain.BookingEntry)
	return entries, args.Error(1)
}

func (m *mockRepo) GetReminderEntries(ctx context.Context, filter domain.ReminderFilter) ([]*domain.ReminderEntry, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]*domain.ReminderEntry)
	return entries, args.Error(1)
}

func (m *mockRepo) UpdateConfirmationCode(ctx context.Context, id int64, code string) error {
	return m.Called(ctx, id, code).Error(0)
}

func (m *mockRepo) SetReminded(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2025, 5, 6, 10, 20, 0, 0, time.UTC)

func TestGetEntry(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.BookingEntry{ID: 1, RoomID: 2, Type: domain.TypeNormal, Name: "Group"}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, entryRepo.ErrEntryNotFound)
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, errors.New("db down"))

	resp, err := svc.GetEntry(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.RoomID)
	assert.Equal(t, "I", resp.Type)

	_, err = svc.GetEntry(context.Background(), 2)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.GetEntry(context.Background(), 3)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetEntry(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAndValidateRoom(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})

	current := &domain.BookingEntry{ID: 10, RoomID: 5, CreatedBy: "alice"}
	repo.On("GetOverlapping", mock.Anything, int64(5), now).Return([]*domain.BookingEntry{current}, nil)
	repo.On("GetOverlapping", mock.Anything, int64(6), now).Return([]*domain.BookingEntry{}, nil)

	resp, err := svc.CheckRoom(context.Background(), 5, now)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, int64(10), resp.Reservation.ID)

	resp, err = svc.CheckRoom(context.Background(), 6, now)
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Nil(t, resp.Reservation)

	resp, err = svc.ValidateRoom(context.Background(), 5, "alice", now)
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	resp, err = svc.ValidateRoom(context.Background(), 5, "bob", now)
	require.NoError(t, err)
	assert.False(t, resp.Valid)

	_, err = svc.ValidateRoom(context.Background(), 5, " ", now)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListReminderBookings(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})

	req := &models.ReminderBookingsRequest{
		From:     now,
		To:       now.Add(time.Hour),
		Statuses: []domain.EntryStatus{domain.StatusTentative},
		Type:     domain.TypeNormal,
	}
	repo.On("GetReminderEntries", mock.Anything, req.ToDomainFilter()).Return([]*domain.ReminderEntry{
		{BookingEntry: domain.BookingEntry{ID: 3}, RoomNumber: "A1", RoomName: "Grupprum"},
	}, nil)

	list, err := svc.ListReminderBookings(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].EntryID)
	assert.Equal(t, "A1", list[0].RoomNumber)

	_, err = svc.ListReminderBookings(context.Background(), &models.ReminderBookingsRequest{From: now, To: now.Add(-time.Minute), Statuses: req.Statuses})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdates(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nopLogger{})

	repo.On("UpdateConfirmationCode", mock.Anything, int64(1), "abc").Return(nil)
	repo.On("UpdateConfirmationCode", mock.Anything, int64(2), "abc").Return(entryRepo.ErrEntryNotFound)
	repo.On("SetReminded", mock.Anything, int64(1)).Return(nil)
	repo.On("SetReminded", mock.Anything, int64(3)).Return(errors.New("db down"))

	assert.NoError(t, svc.SetConfirmationCode(context.Background(), 1, " abc "))
	assert.ErrorIs(t, svc.SetConfirmationCode(context.Background(), 2, "abc"), ErrEntryNotFound)
	assert.ErrorIs(t, svc.SetConfirmationCode(context.Background(), 1, ""), ErrInvalidInput)

	assert.NoError(t, svc.SetReminded(context.Background(), 1))
	assert.ErrorIs(t, svc.SetReminded(context.Background(), 3), ErrInternal)
}

func TestParseStatusesAndType(t *testing.T) {
	statuses, err := models.ParseStatuses("0, 4")
	require.NoError(t, err)
	assert.Equal(t, []domain.EntryStatus{domain.StatusConfirmed, domain.StatusTentative}, statuses)

	_, err = models.ParseStatuses("1")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = models.ParseStatuses("x")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	typ, err := models.ParseType("c")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeClosed, typ)

	_, err = models.ParseType("Z")
	assert.ErrorIs(t, err, models.ErrInvalidType)
}
