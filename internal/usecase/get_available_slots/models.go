package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на получение доступных времён начала
type Request struct {
	LocationID      int64     // ID локации
	Date            time.Time // Дата для расчёта доступности (без времени)
	DurationMinutes int       // Суммарная длительность выбранных услуг и опций
	StaffID         *int64    // Предпочитаемый сотрудник (nil - любой свободный)
	BufferBefore    int       // Буфер подготовки новой записи, минуты
	BufferAfter     int       // Буфер уборки новой записи, минуты
}

// Response модель ответа со списком доступных времён начала
type Response struct {
	Date       time.Time          // Дата, на которую запрашивалась доступность
	LocationID int64              // ID локации
	StaffID    *int64             // Предпочитаемый сотрудник из запроса
	Slots      []types.TimeString // Доступные времена начала, по возрастанию
}
