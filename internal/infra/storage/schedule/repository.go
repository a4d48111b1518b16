package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Repository репозиторий для работы с недельными сменами и исключениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyShifts получает недельные смены указанных сотрудников на день недели
// Возвращает map по ID сотрудника; не более одной записи на сотрудника
func (r *Repository) GetWeeklyShifts(ctx context.Context, staffIDs []int64, dayOfWeek int) (map[int64]*domain.WeeklyShift, error) {
	if len(staffIDs) == 0 {
		return map[int64]*domain.WeeklyShift{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"day_of_week",
		"start_time",
		"end_time",
		"break_start",
		"break_end",
		"is_holiday",
		"created_at",
		"updated_at",
	).
		From("weekly_shifts").
		Where(squirrel.Eq{"staff_id": staffIDs, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyShifts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyShifts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shifts := make(map[int64]*domain.WeeklyShift)

	for rows.Next() {
		var shift domain.WeeklyShift
		var startRaw, endRaw string
		var breakStartRaw, breakEndRaw sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&shift.ID,
			&shift.StaffID,
			&shift.DayOfWeek,
			&startRaw,
			&endRaw,
			&breakStartRaw,
			&breakEndRaw,
			&shift.IsHoliday,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyShifts - scan row: %v", ErrScanRow, err)
		}

		// Нормализуем времена на границе хранилища: дальше по коду
		// ходят только валидные "HH:MM"
		shift.Start, err = parseTime(startRaw, "weekly_shifts", shift.ID, "start_time")
		if err != nil {
			return nil, err
		}
		shift.End, err = parseTime(endRaw, "weekly_shifts", shift.ID, "end_time")
		if err != nil {
			return nil, err
		}
		shift.BreakStart, err = parseNullableTime(breakStartRaw, "weekly_shifts", shift.ID, "break_start")
		if err != nil {
			return nil, err
		}
		shift.BreakEnd, err = parseNullableTime(breakEndRaw, "weekly_shifts", shift.ID, "break_end")
		if err != nil {
			return nil, err
		}

		shift.CreatedAt = createdAt.Time
		shift.UpdatedAt = updatedAt.Time

		shifts[shift.StaffID] = &shift
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyShifts - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}

// GetExceptions получает исключения расписания указанных сотрудников на точную дату
// Возвращает map по ID сотрудника; не более одной записи на сотрудника
func (r *Repository) GetExceptions(ctx context.Context, staffIDs []int64, date time.Time) (map[int64]*domain.ShiftException, error) {
	if len(staffIDs) == 0 {
		return map[int64]*domain.ShiftException{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"exception_date",
		"start_time",
		"end_time",
		"break_start",
		"break_end",
		"is_holiday",
		"created_at",
		"updated_at",
	).
		From("shift_exceptions").
		Where(squirrel.Eq{"staff_id": staffIDs, "exception_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make(map[int64]*domain.ShiftException)

	for rows.Next() {
		var exc domain.ShiftException
		var startRaw, endRaw, breakStartRaw, breakEndRaw sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.StaffID,
			&exc.Date,
			&startRaw,
			&endRaw,
			&breakStartRaw,
			&breakEndRaw,
			&exc.IsHoliday,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetExceptions - scan row: %v", ErrScanRow, err)
		}

		exc.Start, err = parseNullableTime(startRaw, "shift_exceptions", exc.ID, "start_time")
		if err != nil {
			return nil, err
		}
		exc.End, err = parseNullableTime(endRaw, "shift_exceptions", exc.ID, "end_time")
		if err != nil {
			return nil, err
		}
		exc.BreakStart, err = parseNullableTime(breakStartRaw, "shift_exceptions", exc.ID, "break_start")
		if err != nil {
			return nil, err
		}
		exc.BreakEnd, err = parseNullableTime(breakEndRaw, "shift_exceptions", exc.ID, "break_end")
		if err != nil {
			return nil, err
		}

		exc.CreatedAt = createdAt.Time
		exc.UpdatedAt = updatedAt.Time

		exceptions[exc.StaffID] = &exc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// parseTime парсит обязательное время из БД ("HH:MM" или "HH:MM:SS")
func parseTime(raw string, table string, id int64, column string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s id=%d, column=%s: %v", ErrMalformedTime, table, id, column, err)
	}
	return ts, nil
}

// parseNullableTime парсит опциональное время из БД
func parseNullableTime(raw sql.NullString, table string, id int64, column string) (*types.TimeString, error) {
	if !raw.Valid {
		return nil, nil
	}
	ts, err := parseTime(raw.String, table, id, column)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
