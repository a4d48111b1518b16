package get_weekly_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для получения доступности на несколько дней подряд
type UseCase struct {
	dailySlots DailySlotsUseCase
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(dailySlots DailySlotsUseCase, logger Logger) *UseCase {
	return &UseCase{
		dailySlots: dailySlots,
		logger:     logger,
	}
}

// dayResult результат расчёта одного дня
// Каждая горутина пишет только в свой элемент заранее выделенного слайса,
// поэтому общий изменяемый контейнер во время fan-out не нужен
type dayResult struct {
	date  string
	slots []types.TimeString
	err   error
}

// Execute выполняет посуточные расчёты параллельно и объединяет результаты
// Дни не разделяют изменяемого состояния: каждый расчёт выполняет
// собственные загрузки данных. Сбой одного дня фиксируется в Errors,
// не затрагивая остальные дни
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных и подстановка количества дней по умолчанию
	days := req.Days
	if days == 0 {
		days = domain.DefaultWeekDays
	}

	if err := validateRequest(req, days); err != nil {
		uc.logger.Warn("GetWeeklyAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetWeeklyAvailability: location=%d, weekStart=%s, days=%d, duration=%d",
		req.LocationID, req.WeekStart.Format(domain.DateFormat), days, req.DurationMinutes)

	// 2. Запускаем независимый расчёт на каждый день
	results := make([]dayResult, days)

	var wg sync.WaitGroup
	for i := 0; i < days; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			date := req.WeekStart.AddDate(0, 0, idx)
			dateStr := date.Format(domain.DateFormat)

			resp, err := uc.dailySlots.Execute(ctx, &getAvailableSlots.Request{
				LocationID:      req.LocationID,
				Date:            date,
				DurationMinutes: req.DurationMinutes,
				StaffID:         req.StaffID,
				BufferBefore:    req.BufferBefore,
				BufferAfter:     req.BufferAfter,
			})
			if err != nil {
				results[idx] = dayResult{date: dateStr, err: err}
				return
			}

			results[idx] = dayResult{date: dateStr, slots: resp.Slots}
		}(i)
	}
	wg.Wait()

	// 3. Объединяем результаты после завершения всех горутин
	response := &Response{
		WeekStart:  req.WeekStart,
		LocationID: req.LocationID,
		Days:       make(map[string][]types.TimeString, days),
		Errors:     make([]DayError, 0),
	}

	for _, result := range results {
		if result.err != nil {
			// Ошибки, одинаковые для всех дней (неизвестный сотрудник,
			// некорректные параметры), поднимаем на уровень запроса
			if errors.Is(result.err, getAvailableSlots.ErrStaffNotFound) {
				uc.logger.Warn("GetWeeklyAvailability: staff id=%d not found at location=%d",
					*req.StaffID, req.LocationID)
				return nil, ErrStaffNotFound
			}
			if errors.Is(result.err, getAvailableSlots.ErrInvalidInput) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, result.err)
			}

			uc.logger.Error("GetWeeklyAvailability: day %s failed: %v", result.date, result.err)
			response.Errors = append(response.Errors, DayError{
				Date: result.date,
				Err:  result.err,
			})
			continue
		}

		response.Days[result.date] = result.slots
	}

	sort.Slice(response.Errors, func(i, j int) bool {
		return response.Errors[i].Date < response.Errors[j].Date
	})

	uc.logger.Info("GetWeeklyAvailability: location=%d, days computed=%d, days failed=%d",
		req.LocationID, len(response.Days), len(response.Errors))

	return response, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, days int) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.WeekStart.IsZero() {
		return fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}

	if days < domain.MinWeekDays || days > domain.MaxWeekDays {
		return fmt.Errorf("%w: days must be in [%d, %d]",
			ErrInvalidInput, domain.MinWeekDays, domain.MaxWeekDays)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be in [%d, %d]",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	return nil
}
