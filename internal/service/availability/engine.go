package availability

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// DurationRequest параметры запрашиваемого бронирования: суммарная
// длительность услуг и буферы новой записи (подготовка/уборка)
type DurationRequest struct {
	DurationMinutes int
	BufferBefore    int
	BufferAfter     int
}

// StaffSlots перечисляет бесконфликтные времена начала для одного сотрудника
// на один день. Кандидаты перебираются от 0 до 1440 минут с шагом interval;
// кандидат t принимается, если:
//   - [t, t+duration] помещается в окно работы локации
//   - буферизованный конверт [t-bufBefore, t+duration+bufAfter] целиком
//     лежит внутри смены: буферы занимают сотрудника так же, как услуга
//   - конверт не пересекает перерыв смены (полуоткрытые интервалы,
//     касание границ не считается пересечением)
//   - конверт не пересекает буферизованный конверт ни одного активного
//     бронирования
//
// Функция чистая: входные записи не изменяются, результат зависит только
// от данных и отсортирован по построению
func StaffSlots(
	shift *domain.EffectiveShift,
	bookings []*domain.Booking,
	window domain.BusinessWindow,
	interval int,
	req DurationRequest,
) ([]int, error) {
	if !domain.IsAllowedSlotInterval(interval) {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidInterval, interval)
	}

	if shift == nil || shift.Unavailable || window.Closed {
		return []int{}, nil
	}

	shiftStart, err := shift.Start.Minutes()
	if err != nil {
		return nil, malformedShiftTime(shift.StaffID, "start", shift.Start, err)
	}
	shiftEnd, err := shift.End.Minutes()
	if err != nil {
		return nil, malformedShiftTime(shift.StaffID, "end", shift.End, err)
	}

	var breakInterval *domain.MinuteInterval
	if shift.HasBreak() {
		breakStart, err := shift.BreakStart.Minutes()
		if err != nil {
			return nil, malformedShiftTime(shift.StaffID, "break_start", *shift.BreakStart, err)
		}
		breakEnd, err := shift.BreakEnd.Minutes()
		if err != nil {
			return nil, malformedShiftTime(shift.StaffID, "break_end", *shift.BreakEnd, err)
		}
		breakInterval = &domain.MinuteInterval{Start: breakStart, End: breakEnd}
	}

	accepted := make([]int, 0)

	for t := 0; t < domain.MinutesPerDay; t += interval {
		proposedEnd := t + req.DurationMinutes

		// Окно работы локации ограничивает саму услугу (без буферов)
		if t < window.Open || proposedEnd > window.Close {
			continue
		}

		// Буферы должны помещаться внутри смены целиком
		envelope := domain.MinuteInterval{
			Start: t - req.BufferBefore,
			End:   proposedEnd + req.BufferAfter,
		}
		if envelope.Start < shiftStart || envelope.End > shiftEnd {
			continue
		}

		if breakInterval != nil && envelope.Overlaps(*breakInterval) {
			continue
		}

		if conflictsWithBookings(envelope, bookings) {
			continue
		}

		accepted = append(accepted, t)
	}

	return accepted, nil
}

// conflictsWithBookings проверяет пересечение конверта кандидата с
// буферизованными конвертами активных бронирований
// Касающиеся интервалы (effEnd == bookingEffStart) конфликтом не считаются
func conflictsWithBookings(envelope domain.MinuteInterval, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if envelope.Overlaps(b.BufferedWindow()) {
			return true
		}
	}
	return false
}

func malformedShiftTime(staffID int64, field string, value fmt.Stringer, err error) error {
	return fmt.Errorf("%w: staff id=%d, field=%s, value=%q: %v", ErrMalformedTime, staffID, field, value.String(), err)
}

func malformedBusinessHours(cfg *domain.BusinessDayConfig, field string, err error) error {
	return fmt.Errorf("%w: business_hours id=%d, day_of_week=%d, field=%s: %v", ErrMalformedTime, cfg.ID, cfg.DayOfWeek, field, err)
}
