package get_weekly_availability

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	getWeeklyAvailability "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_weekly_availability"
)

// WeeklyAvailabilityResponse HTTP response model
type WeeklyAvailabilityResponse struct {
	WeekStart  string              `json:"weekStart"`
	LocationID int64               `json:"locationId"`
	Days       map[string][]string `json:"days"`
	Errors     []DayError          `json:"errors,omitempty"`
}

// DayError ошибка расчёта одного дня периода
type DayError struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeeklyAvailability.Response) *WeeklyAvailabilityResponse {
	days := make(map[string][]string, len(resp.Days))
	for date, slots := range resp.Days {
		converted := make([]string, len(slots))
		for i, slot := range slots {
			converted[i] = slot.String()
		}
		days[date] = converted
	}

	dayErrors := make([]DayError, len(resp.Errors))
	for i, dayErr := range resp.Errors {
		dayErrors[i] = DayError{Date: dayErr.Date, Message: dayErrorMessage(dayErr.Err)}
	}

	return &WeeklyAvailabilityResponse{
		WeekStart:  resp.WeekStart.Format(domain.DateFormat),
		LocationID: resp.LocationID,
		Days:       days,
		Errors:     dayErrors,
	}
}

// dayErrorMessage возвращает обезличенное сообщение об ошибке дня
// Детали исходной ошибки остаются в логах, клиенту не передаются
func dayErrorMessage(err error) string {
	if errors.Is(err, getAvailableSlots.ErrMalformedData) {
		return msgDayMalformedData
	}
	return msgDayFailed
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(locationID int64, weekStartStr string, days int, durationMinutes int, staffID *int64, bufferBefore, bufferAfter int) (*getWeeklyAvailability.Request, error) {
	weekStart, err := time.Parse(domain.DateFormat, weekStartStr)
	if err != nil {
		return nil, err
	}

	return &getWeeklyAvailability.Request{
		LocationID:      locationID,
		WeekStart:       weekStart,
		Days:            days,
		DurationMinutes: durationMinutes,
		StaffID:         staffID,
		BufferBefore:    bufferBefore,
		BufferAfter:     bufferAfter,
	}, nil
}
