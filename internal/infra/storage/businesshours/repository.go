package businesshours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Repository репозиторий для работы с рабочими часами локаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation получает конфигурацию рабочих часов локации
// Возвращает не более одной записи на день недели; отсутствие записей -
// нормальная ситуация (локация без ограничений рабочих часов)
func (r *Repository) GetByLocation(ctx context.Context, locationID int64) ([]*domain.BusinessDayConfig, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"location_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_closed",
		"created_at",
		"updated_at",
	).
		From("business_hours").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.BusinessDayConfig, 0)

	for rows.Next() {
		var cfg domain.BusinessDayConfig
		var startRaw, endRaw sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&cfg.ID,
			&cfg.LocationID,
			&cfg.DayOfWeek,
			&startRaw,
			&endRaw,
			&cfg.IsClosed,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByLocation - scan row: %v", ErrScanRow, err)
		}

		// Для закрытых дней времена не обязательны и не используются
		cfg.Start, err = parseTime(startRaw, cfg.ID, "start_time", cfg.IsClosed)
		if err != nil {
			return nil, err
		}
		cfg.End, err = parseTime(endRaw, cfg.ID, "end_time", cfg.IsClosed)
		if err != nil {
			return nil, err
		}

		cfg.CreatedAt = createdAt.Time
		cfg.UpdatedAt = updatedAt.Time

		configs = append(configs, &cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

func parseTime(raw sql.NullString, id int64, column string, closed bool) (types.TimeString, error) {
	if !raw.Valid {
		if closed {
			return "00:00", nil
		}
		return "", fmt.Errorf("%w: business_hours id=%d, column=%s: NULL on open day", ErrMalformedTime, id, column)
	}
	ts, err := types.NewTimeStringFromString(raw.String)
	if err != nil {
		return "", fmt.Errorf("%w: business_hours id=%d, column=%s: %v", ErrMalformedTime, id, column, err)
	}
	return ts, nil
}
