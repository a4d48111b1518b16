package get_weekly_availability

import (
	"context"

	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

// DailySlotsUseCase интерфейс посуточного расчёта доступности
// Каждый день недели считается независимым вызовом: свой набор загрузок
// данных, своя агрегация
type DailySlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
