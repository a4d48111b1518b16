package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/businesshours"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	configRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/scheduleconfig"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для получения доступных времён начала на один день
type UseCase struct {
	staffRepo       StaffRepository
	scheduleRepo    ScheduleRepository
	hoursRepo       BusinessHoursRepository
	bookingRepo     BookingRepository
	configRepo      ConfigRepository
	defaultInterval int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// defaultInterval - шаг генерации слотов для локаций без собственной
// настройки; 0 заменяется сервисным значением по умолчанию
func NewUseCase(
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	hoursRepo BusinessHoursRepository,
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	defaultInterval int,
	logger Logger,
) *UseCase {
	if defaultInterval == 0 {
		defaultInterval = domain.DefaultSlotIntervalMinutes
	}
	return &UseCase{
		staffRepo:       staffRepo,
		scheduleRepo:    scheduleRepo,
		hoursRepo:       hoursRepo,
		bookingRepo:     bookingRepo,
		configRepo:      configRepo,
		defaultInterval: defaultInterval,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных времён начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: location=%d, date=%s, duration=%d, staff=%v",
		req.LocationID, req.Date.Format(domain.DateFormat), req.DurationMinutes, req.StaffID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем активный персонал локации
	roster, err := uc.staffRepo.ListActiveByLocation(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	// Пустой персонал - легитимный пустой результат, не ошибка
	if len(roster) == 0 {
		uc.logger.Info("GetAvailableSlots: no active staff at location=%d", req.LocationID)
		return emptyResponse(req), nil
	}

	// 4. Сужаем персонал до предпочитаемого сотрудника, если он указан
	staffIDs, err := eligibleStaffIDs(roster, req.StaffID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: staff id=%d not found at location=%d", *req.StaffID, req.LocationID)
		return nil, err
	}

	// 5. Получаем конфигурацию генерации слотов локации
	interval, err := uc.resolveSlotInterval(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	// 6. Загружаем данные дня: рабочие часы, смены, исключения, бронирования
	hoursConfigs, err := uc.hoursRepo.GetByLocation(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business hours for location=%d: %v", req.LocationID, err)
		return nil, uc.mapDataError("business hours", err)
	}

	weekly, err := uc.scheduleRepo.GetWeeklyShifts(ctx, staffIDs, domain.DayOfWeek(req.Date))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get weekly shifts: %v", err)
		return nil, uc.mapDataError("weekly shifts", err)
	}

	exceptions, err := uc.scheduleRepo.GetExceptions(ctx, staffIDs, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get shift exceptions: %v", err)
		return nil, uc.mapDataError("shift exceptions", err)
	}

	bookings, err := uc.bookingRepo.GetActiveByStaffAndDate(ctx, staffIDs, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, uc.mapDataError("bookings", err)
	}

	// 7. Резолвим окно работы локации на дату
	window, err := availability.ResolveBusinessHours(hoursConfigs, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: malformed business hours for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	if window.Closed {
		uc.logger.Info("GetAvailableSlots: location=%d is closed on %s",
			req.LocationID, req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 8. Резолвим эффективные смены: исключение на дату полностью
	// заменяет недельную смену
	shifts := make(map[int64]*domain.EffectiveShift, len(staffIDs))
	for _, staffID := range staffIDs {
		shifts[staffID] = availability.ResolveShift(staffID, weekly[staffID], exceptions[staffID])
	}

	// 9. Группируем бронирования по сотрудникам, логируя legacy-записи
	bookingsByStaff := uc.groupBookings(bookings)

	// 10. Объединяем доступность всех подходящих сотрудников
	slots, err := availability.ComputeDay(availability.DayParams{
		Date:     req.Date,
		Now:      now,
		Window:   window,
		Shifts:   shifts,
		Bookings: bookingsByStaff,
		Interval: interval,
		Request: availability.DurationRequest{
			DurationMinutes: req.DurationMinutes,
			BufferBefore:    req.BufferBefore,
			BufferAfter:     req.BufferAfter,
		},
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute availability: %v", err)
		if errors.Is(err, availability.ErrMalformedTime) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for location=%d, date=%s",
		len(slots), req.LocationID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:       req.Date,
		LocationID: req.LocationID,
		StaffID:    req.StaffID,
		Slots:      slots,
	}, nil
}

// eligibleStaffIDs возвращает ID сотрудников, участвующих в расчёте:
// либо одного предпочитаемого, либо весь активный персонал
func eligibleStaffIDs(roster []*domain.Staff, preferred *int64) ([]int64, error) {
	if preferred == nil {
		ids := make([]int64, len(roster))
		for i, member := range roster {
			ids[i] = member.ID
		}
		return ids, nil
	}

	for _, member := range roster {
		if member.ID == *preferred {
			return []int64{*preferred}, nil
		}
	}

	return nil, ErrStaffNotFound
}

// resolveSlotInterval возвращает шаг генерации слотов локации
// Отсутствие конфигурации - нормальная ситуация, применяется значение
// по умолчанию; недопустимое сохранённое значение - ошибка данных
func (uc *UseCase) resolveSlotInterval(ctx context.Context, locationID int64) (int, error) {
	cfg, err := uc.configRepo.GetByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Info("GetAvailableSlots: using default slot interval=%d for location=%d",
				uc.defaultInterval, locationID)
			return uc.defaultInterval, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule config for location=%d: %v", locationID, err)
		return 0, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	if !domain.IsAllowedSlotInterval(cfg.SlotIntervalMinutes) {
		uc.logger.Error("GetAvailableSlots: schedule config id=%d has invalid interval=%d",
			cfg.ID, cfg.SlotIntervalMinutes)
		return 0, fmt.Errorf("%w: schedule config id=%d: invalid slot interval %d",
			ErrMalformedData, cfg.ID, cfg.SlotIntervalMinutes)
	}

	return cfg.SlotIntervalMinutes, nil
}

// groupBookings группирует бронирования по сотрудникам
func (uc *UseCase) groupBookings(bookings []*domain.Booking) map[int64][]*domain.Booking {
	grouped := make(map[int64][]*domain.Booking)
	for _, b := range bookings {
		if b.HasLegacyEnd() {
			uc.logger.Warn("GetAvailableSlots: booking id=%d has no end_at, assuming %d minutes",
				b.ID, domain.DefaultLegacyBookingDurationMinutes)
		}
		grouped[b.StaffID] = append(grouped[b.StaffID], b)
	}
	return grouped
}

// mapDataError оборачивает ошибку чтения данных, сохраняя различие между
// сбоем чтения (ErrInternal) и некорректными сохранёнными данными
// (ErrMalformedData)
func (uc *UseCase) mapDataError(source string, err error) error {
	if errors.Is(err, scheduleRepo.ErrMalformedTime) || errors.Is(err, hoursRepo.ErrMalformedTime) {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return fmt.Errorf("%w: failed to load %s: %v", ErrInternal, source, err)
}

func emptyResponse(req *Request) *Response {
	return &Response{
		Date:       req.Date,
		LocationID: req.LocationID,
		StaffID:    req.StaffID,
		Slots:      []types.TimeString{},
	}
}
