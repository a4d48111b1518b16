package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с персоналом локаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория персонала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByLocation получает список активных сотрудников локации
// Неактивные сотрудники (уволенные, в длительном отпуске) не участвуют
// в расчёте доступности
func (r *Repository) ListActiveByLocation(ctx context.Context, locationID int64) ([]*domain.Staff, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"location_id",
		"name",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("staff").
		Where(squirrel.Eq{"location_id": locationID, "is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffList := make([]*domain.Staff, 0)

	for rows.Next() {
		var member domain.Staff
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&member.ID,
			&member.LocationID,
			&member.Name,
			&member.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByLocation - scan row: %v", ErrScanRow, err)
		}

		member.CreatedAt = createdAt.Time
		member.UpdatedAt = updatedAt.Time

		staffList = append(staffList, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByLocation - rows error: %v", ErrScanRow, err)
	}

	return staffList, nil
}
