package scheduleconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией генерации слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation получает конфигурацию генерации слотов локации
// Возвращает ErrConfigNotFound, если у локации нет собственной настройки -
// вызывающий код подставляет значения по умолчанию
func (r *Repository) GetByLocation(ctx context.Context, locationID int64) (*domain.LocationScheduleConfig, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"location_id",
		"slot_interval_minutes",
		"created_at",
		"updated_at",
	).
		From("location_schedule_configs").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.LocationScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.LocationID,
		&cfg.SlotIntervalMinutes,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
