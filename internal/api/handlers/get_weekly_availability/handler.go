package get_weekly_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getWeeklyAvailability "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_weekly_availability"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgInvalidStaffID    = "некорректный ID сотрудника"
	msgMissingWeekStart  = "дата начала периода обязательна"
	msgInvalidWeekStart  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDuration   = "длительность обязательна"
	msgInvalidDuration   = "некорректная длительность"
	msgInvalidDays       = "некорректное количество дней"
	msgInvalidBuffer     = "некорректное значение буфера"
	msgStaffNotFound     = "сотрудник не найден в этой локации"
	msgInvalidInput      = "некорректные параметры запроса"
	msgDayMalformedData  = "некорректные данные расписания"
	msgDayFailed         = "не удалось рассчитать доступность на этот день"
)

type Handler struct {
	useCase GetWeeklyAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklyAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/weekly-availability
// Query params: weekStart (required, YYYY-MM-DD), durationMinutes (required),
// days, staffId, bufferBefore, bufferAfter (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем locationId из URL
	locationIDStr := vars["locationId"]
	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	// Извлекаем weekStart из query параметров
	weekStartStr := r.URL.Query().Get("weekStart")
	if weekStartStr == "" {
		h.logger.Warn("GET /locations/{id}/weekly-availability - Missing weekStart")
		handlers.RespondBadRequest(w, msgMissingWeekStart)
		return
	}

	// Извлекаем durationMinutes из query параметров
	durationStr := r.URL.Query().Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /locations/{id}/weekly-availability - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Извлекаем опциональное количество дней (0 - значение по умолчанию)
	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	// Извлекаем опционального предпочитаемого сотрудника
	var staffID *int64
	if staffIDStr := r.URL.Query().Get("staffId"); staffIDStr != "" {
		id, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &id
	}

	// Извлекаем опциональные буферы новой записи
	bufferBefore, err := optionalIntParam(r, "bufferBefore")
	if err != nil {
		h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid bufferBefore: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBuffer)
		return
	}

	bufferAfter, err := optionalIntParam(r, "bufferAfter")
	if err != nil {
		h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid bufferAfter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBuffer)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(locationID, weekStartStr, days, durationMinutes, staffID, bufferBefore, bufferAfter)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid weekStart format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekStart)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getWeeklyAvailability.ErrStaffNotFound):
			h.logger.Warn("GET /locations/{id}/weekly-availability - Staff not found: location_id=%d, staff_id=%v",
				locationID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getWeeklyAvailability.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/weekly-availability - Invalid input: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /locations/{id}/weekly-availability - Failed to get availability: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ; дни со сбоями перечислены в errors,
	// успешные дни возвращаются как есть
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /locations/{id}/weekly-availability - Availability retrieved: location_id=%d, weekStart=%s, days=%d, failed=%d",
		locationID, weekStartStr, len(result.Days), len(result.Errors))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// optionalIntParam извлекает опциональный неотрицательный int из query параметров
func optionalIntParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
