package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomAvailabilityService/pkg/types"
)

// Repository репозиторий расписаний комнат и настроек областей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetArea получает область по ID
func (r *Repository) GetArea(ctx context.Context, id int64) (*domain.Area, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"area_name",
		"resolution",
		"morningstarts",
		"morningstarts_minutes",
		"eveningends",
		"eveningends_minutes",
		"default_view",
		"reminder_email_enabled",
	).
		From("areas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetArea - build select query: %v", ErrBuildQuery, err)
	}

	var (
		area                                 domain.Area
		morningHour, morningMin              int
		eveningHour, eveningMin, defaultView int
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&area.ID,
		&area.Name,
		&area.ResolutionSeconds,
		&morningHour,
		&morningMin,
		&eveningHour,
		&eveningMin,
		&defaultView,
		&area.ReminderEmailEnabled,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetArea - scan area: %v", ErrScanRow, err)
	}

	area.MorningStarts = types.NewSecondOfDay(morningHour, morningMin)
	area.EveningEnds = types.NewSecondOfDay(eveningHour, eveningMin)
	area.DefaultView = domain.DefaultView(defaultView)

	return &area, nil
}

// GetRoom получает комнату по ID вместе с недельным расписанием
func (r *Repository) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"area_id",
		"room_number",
		"room_name",
		"disabled",
		"sort_key",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.AreaID,
		&room.RoomNumber,
		&room.RoomName,
		&room.Disabled,
		&room.SortKey,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - scan room: %v", ErrScanRow, err)
	}

	room.Schedule, err = r.GetWeeklySchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

// GetRoomsByArea получает комнаты области в порядке sort_key.
// Расписания не загружаются - для классификации часа они не нужны
func (r *Repository) GetRoomsByArea(ctx context.Context, areaID int64) ([]*domain.Room, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"area_id",
		"room_number",
		"room_name",
		"disabled",
		"sort_key",
	).
		From("rooms").
		Where(squirrel.Eq{"area_id": areaID}).
		OrderBy("sort_key ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomsByArea - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomsByArea - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.AreaID,
			&room.RoomNumber,
			&room.RoomName,
			&room.Disabled,
			&room.SortKey,
		); err != nil {
			return nil, fmt.Errorf("%w: GetRoomsByArea - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomsByArea - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetWeeklySchedule получает недельный шаблон часов комнаты.
// Дни без строки или с NULL в morningstarts в результат не попадают
func (r *Repository) GetWeeklySchedule(ctx context.Context, roomID int64) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"weekday",
		"morningstarts",
		"morningstarts_minutes",
		"eveningends",
		"eveningends_minutes",
	).
		From("room_schedules").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule, domain.DaysInWeek)
	for rows.Next() {
		var (
			weekday                  int
			morningHour, eveningHour sql.NullInt32
			morningMin, eveningMin   int
		)
		if err := rows.Scan(&weekday, &morningHour, &morningMin, &eveningHour, &eveningMin); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan day: %v", ErrScanRow, err)
		}

		if !morningHour.Valid || !eveningHour.Valid {
			continue
		}

		schedule[time.Weekday(weekday)] = &domain.ScheduleWindow{
			StartSecond: types.NewSecondOfDay(int(morningHour.Int32), morningMin),
			EndSecond:   types.NewSecondOfDay(int(eveningHour.Int32), eveningMin),
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// GetClosedDays возвращает даты в диапазоне [from, to), с которыми пересекается хотя бы одна запись комнаты.
// Запись, начавшаяся раньше from, тоже учитывается. Даты считаются в локации from
func (r *Repository) GetClosedDays(ctx context.Context, roomID int64, from, to time.Time) (domain.ClosedDays, error) {
	query, args, err := psqlbuilder.Select("start_time", "end_time").
		From("entries").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"start_time": to.Unix()}).
		Where(squirrel.Gt{"end_time": from.Unix()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClosedDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetClosedDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make(domain.ClosedDays)
	for rows.Next() {
		var start, end int64
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetClosedDays - scan entry span: %v", ErrScanRow, err)
		}
		days.AddSpan(time.Unix(start, 0), time.Unix(end, 0), from.Location())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetClosedDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}
