package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DayParams входные данные для вычисления доступности на один день
// Shifts и Bookings ключуются по ID сотрудника; в Shifts присутствуют
// только сотрудники, участвующие в запросе
type DayParams struct {
	Date     time.Time
	Now      time.Time
	Window   domain.BusinessWindow
	Shifts   map[int64]*domain.EffectiveShift
	Bookings map[int64][]*domain.Booking
	Interval int
	Request  DurationRequest
}

// ComputeDay объединяет посуточную доступность всех подходящих сотрудников
// Время доступно, если свободен хотя бы один сотрудник: при запросе без
// предпочтения сотрудник назначается позже. Результат дедуплицирован,
// отсортирован по возрастанию; для сегодняшней даты уже прошедшие времена
// исключаются, для прошедших дат результат пуст
func ComputeDay(p DayParams) ([]types.TimeString, error) {
	if isDateInPast(p.Date, p.Now) {
		return []types.TimeString{}, nil
	}

	union := make(map[int]struct{})

	for staffID, shift := range p.Shifts {
		slots, err := StaffSlots(shift, p.Bookings[staffID], p.Window, p.Interval, p.Request)
		if err != nil {
			return nil, err
		}
		for _, t := range slots {
			union[t] = struct{}{}
		}
	}

	minutes := make([]int, 0, len(union))

	if isSameDay(p.Date, p.Now) {
		// Кандидаты не позже текущей минуты уже прошли
		nowMinute := p.Now.Hour()*60 + p.Now.Minute()
		for t := range union {
			if t > nowMinute {
				minutes = append(minutes, t)
			}
		}
	} else {
		for t := range union {
			minutes = append(minutes, t)
		}
	}

	sort.Ints(minutes)

	result := make([]types.TimeString, 0, len(minutes))
	for _, t := range minutes {
		ts, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, err
		}
		result = append(result, ts)
	}

	return result, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
