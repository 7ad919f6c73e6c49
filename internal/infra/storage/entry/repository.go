package entry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/psqlbuilder"
)

// entryColumns колонки записи в порядке scanEntry
var entryColumns = []string{
	"e.id",
	"e.room_id",
	"e.start_time",
	"e.end_time",
	"e.status",
	"e.type",
	"e.confirmation_code",
	"e.create_by",
	"e.name",
	"e.description",
	"e.reminded",
	"e.lang",
}

// Repository репозиторий записей бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingEntry, error) {
	query, args, err := psqlbuilder.Select(entryColumns...).
		From("entries e").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.BookingEntry
	err = scanEntry(r.db.QueryRowContext(ctx, query, args...), &entry)

	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return &entry, nil
}

// IsSlotOccupied проверяет, занимает ли какая-либо запись комнату в момент instant
// (start_time <= instant < end_time)
func (r *Repository) IsSlotOccupied(ctx context.Context, roomID int64, instant time.Time) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("entries").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.LtOrEq{"start_time": instant.Unix()}).
		Where(squirrel.Gt{"end_time": instant.Unix()}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsSlotOccupied - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsSlotOccupied - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetOverlapping получает записи комнаты, занимающие момент instant.
// Записи упорядочены по началу и ID: последней идет самая поздняя
func (r *Repository) GetOverlapping(ctx context.Context, roomID int64, instant time.Time) ([]*domain.BookingEntry, error) {
	query, args, err := psqlbuilder.Select(entryColumns...).
		From("entries e").
		Where(squirrel.Eq{"e.room_id": roomID}).
		Where(squirrel.LtOrEq{"e.start_time": instant.Unix()}).
		Where(squirrel.Gt{"e.end_time": instant.Unix()}).
		OrderBy("e.start_time ASC", "e.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetByConfirmationCode получает записи с указанным кодом подтверждения
func (r *Repository) GetByConfirmationCode(ctx context.Context, code string) ([]*domain.BookingEntry, error) {
	query, args, err := psqlbuilder.Select(entryColumns...).
		From("entries e").
		Where(squirrel.Eq{"e.confirmation_code": code}).
		OrderBy("e.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationCode - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationCode - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// ConfirmByCode подтверждает предварительные записи с кодом и стирает код.
// Один условный UPDATE: из двух параллельных вызовов строки изменит только первый.
// Возвращает количество измененных строк
func (r *Repository) ConfirmByCode(ctx context.Context, code string) (int64, error) {
	query, args, err := psqlbuilder.Update("entries").
		Set("status", domain.StatusConfirmed).
		Set("confirmation_code", nil).
		Where(squirrel.Eq{"confirmation_code": code}).
		Where(squirrel.Eq{"status": domain.StatusTentative}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ConfirmByCode - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ConfirmByCode - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ConfirmByCode - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// GetWithRoomAndArea получает запись вместе с названием комнаты, областью и видом календаря
func (r *Repository) GetWithRoomAndArea(ctx context.Context, id int64) (*domain.EntryWithRoomAndArea, error) {
	columns := append(append([]string{}, entryColumns...), "r.room_name", "r.area_id", "a.default_view")

	query, args, err := psqlbuilder.Select(columns...).
		From("entries e").
		Join("rooms r ON e.room_id = r.id").
		Join("areas a ON r.area_id = a.id").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWithRoomAndArea - build select query: %v", ErrBuildQuery, err)
	}

	var (
		result      domain.EntryWithRoomAndArea
		defaultView int
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		append(entryDest(&result.BookingEntry), &result.RoomName, &result.AreaID, &defaultView)...,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithRoomAndArea - scan entry: %v", ErrScanRow, err)
	}

	result.DefaultView = domain.DefaultView(defaultView)

	return &result, nil
}

// GetReminderEntries получает записи, по которым нужно отправить напоминание.
// Учитываются только области с включенными напоминаниями и записи без отметки reminded
func (r *Repository) GetReminderEntries(ctx context.Context, filter domain.ReminderFilter) ([]*domain.ReminderEntry, error) {
	columns := append(append([]string{}, entryColumns...),
		"r.room_number",
		"r.room_name",
		"r.room_name_english",
		"a.area_map",
		"a.mailtext",
		"a.mailtext_en",
	)

	statuses := make([]int, len(filter.Statuses))
	for i, s := range filter.Statuses {
		statuses[i] = int(s)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("entries e").
		Join("rooms r ON r.id = e.room_id").
		Join("areas a ON a.id = r.area_id").
		Where(squirrel.Eq{"e.status": statuses}).
		Where(squirrel.Eq{"e.type": string(filter.Type)}).
		Where(squirrel.Eq{"a.reminder_email_enabled": true}).
		Where(squirrel.GtOrEq{"e.start_time": filter.From.Unix()}).
		Where(squirrel.LtOrEq{"e.start_time": filter.To.Unix()}).
		Where(squirrel.Eq{"e.reminded": false}).
		OrderBy("e.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetReminderEntries - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReminderEntries - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.ReminderEntry, 0)
	for rows.Next() {
		var entry domain.ReminderEntry
		dest := append(entryDest(&entry.BookingEntry),
			&entry.RoomNumber,
			&entry.RoomName,
			&entry.RoomNameEnglish,
			&entry.AreaMap,
			&entry.MailText,
			&entry.MailTextEnglish,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: GetReminderEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReminderEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// UpdateConfirmationCode устанавливает код подтверждения записи
func (r *Repository) UpdateConfirmationCode(ctx context.Context, id int64, code string) error {
	query, args, err := psqlbuilder.Update("entries").
		Set("confirmation_code", code).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateConfirmationCode - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, "UpdateConfirmationCode", query, args)
}

// SetReminded отмечает, что напоминание по записи отправлено
func (r *Repository) SetReminded(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("entries").
		Set("reminded", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetReminded - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, "SetReminded", query, args)
}

// execSingle выполняет UPDATE одной записи, отсутствие строки - ErrEntryNotFound
func (r *Repository) execSingle(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// scanEntries сканирует результаты запроса в слайс записей
func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.BookingEntry, error) {
	entries := make([]*domain.BookingEntry, 0)

	for rows.Next() {
		var entry domain.BookingEntry
		if err := scanEntry(rows, &entry); err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner, entry *domain.BookingEntry) error {
	return row.Scan(entryDest(entry)...)
}

// entryDest возвращает указатели на поля записи в порядке entryColumns
func entryDest(entry *domain.BookingEntry) []interface{} {
	return []interface{}{
		&entry.ID,
		&entry.RoomID,
		&entry.StartTime,
		&entry.EndTime,
		&entry.Status,
		&entry.Type,
		&entry.ConfirmationCode,
		&entry.CreatedBy,
		&entry.Name,
		&entry.Description,
		&entry.Reminded,
		&entry.Lang,
	}
}
