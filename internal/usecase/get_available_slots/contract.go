package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// StaffRepository интерфейс репозитория персонала
type StaffRepository interface {
	// ListActiveByLocation получает активных сотрудников локации
	ListActiveByLocation(ctx context.Context, locationID int64) ([]*domain.Staff, error)
}

// ScheduleRepository интерфейс репозитория смен и исключений
type ScheduleRepository interface {
	// GetWeeklyShifts получает недельные смены сотрудников на день недели
	GetWeeklyShifts(ctx context.Context, staffIDs []int64, dayOfWeek int) (map[int64]*domain.WeeklyShift, error)
	// GetExceptions получает исключения расписания сотрудников на точную дату
	GetExceptions(ctx context.Context, staffIDs []int64, date time.Time) (map[int64]*domain.ShiftException, error)
}

// BusinessHoursRepository интерфейс репозитория рабочих часов локации
type BusinessHoursRepository interface {
	GetByLocation(ctx context.Context, locationID int64) ([]*domain.BusinessDayConfig, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByStaffAndDate получает активные бронирования сотрудников на дату
	GetActiveByStaffAndDate(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.Booking, error)
}

// ConfigRepository интерфейс репозитория конфигурации генерации слотов
type ConfigRepository interface {
	GetByLocation(ctx context.Context, locationID int64) (*domain.LocationScheduleConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
