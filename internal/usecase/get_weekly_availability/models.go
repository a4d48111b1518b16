package get_weekly_availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на получение доступности на несколько дней
type Request struct {
	LocationID      int64     // ID локации
	WeekStart       time.Time // Первый день периода (без времени)
	Days            int       // Количество дней; 0 - неделя по умолчанию
	DurationMinutes int       // Суммарная длительность выбранных услуг и опций
	StaffID         *int64    // Предпочитаемый сотрудник (nil - любой свободный)
	BufferBefore    int       // Буфер подготовки новой записи, минуты
	BufferAfter     int       // Буфер уборки новой записи, минуты
}

// DayError ошибка расчёта одного дня периода
// Сбой одного дня не отменяет результаты остальных дней. Исходная ошибка
// сохраняется для классификации; текст для клиента формирует HTTP-слой
type DayError struct {
	Date string // Дата в формате YYYY-MM-DD
	Err  error
}

// Response модель ответа: карта дата → доступные времена начала
// Days содержит только успешно рассчитанные дни; сбои перечислены в Errors
type Response struct {
	WeekStart  time.Time
	LocationID int64
	Days       map[string][]types.TimeString // ключ - дата YYYY-MM-DD
	Errors     []DayError
}
