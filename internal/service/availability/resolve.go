package availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ResolveBusinessHours возвращает окно работы локации на указанную дату
// Если конфигурация на этот день недели отсутствует - окно без ограничений
// (00:00–24:00), а не "закрыто": исторически доступность ограничивали
// только смены персонала
func ResolveBusinessHours(configs []*domain.BusinessDayConfig, date time.Time) (domain.BusinessWindow, error) {
	dow := domain.DayOfWeek(date)

	for _, cfg := range configs {
		if cfg.DayOfWeek != dow {
			continue
		}

		// is_closed имеет приоритет над сохранёнными временами
		if cfg.IsClosed {
			return domain.BusinessWindow{Closed: true}, nil
		}

		open, err := cfg.Start.Minutes()
		if err != nil {
			return domain.BusinessWindow{}, malformedBusinessHours(cfg, "start", err)
		}
		closeMin, err := cfg.End.Minutes()
		if err != nil {
			return domain.BusinessWindow{}, malformedBusinessHours(cfg, "end", err)
		}

		return domain.BusinessWindow{Open: open, Close: closeMin}, nil
	}

	return domain.FullyOpenWindow(), nil
}

// ResolveShift возвращает эффективную смену сотрудника на дату
// Порядок разрешения:
//  1. Если есть исключение на точную дату - используется только оно,
//     недельная смена игнорируется целиком (полная замена, не merge)
//  2. Иначе недельная смена на день недели; её отсутствие или is_holiday
//     означают недоступность
func ResolveShift(staffID int64, weekly *domain.WeeklyShift, exception *domain.ShiftException) *domain.EffectiveShift {
	if exception != nil {
		if exception.IsHoliday || exception.Start == nil || exception.End == nil {
			return &domain.EffectiveShift{StaffID: staffID, Unavailable: true}
		}
		return &domain.EffectiveShift{
			StaffID:    staffID,
			Start:      *exception.Start,
			End:        *exception.End,
			BreakStart: exception.BreakStart,
			BreakEnd:   exception.BreakEnd,
		}
	}

	if weekly == nil || weekly.IsHoliday {
		return &domain.EffectiveShift{StaffID: staffID, Unavailable: true}
	}

	return &domain.EffectiveShift{
		StaffID:    staffID,
		Start:      weekly.Start,
		End:        weekly.End,
		BreakStart: weekly.BreakStart,
		BreakEnd:   weekly.BreakEnd,
	}
}
