package get_available_slots

import "errors"

var (
	// ErrStaffNotFound возвращается, когда предпочитаемый сотрудник
	// не найден среди активного персонала локации
	ErrStaffNotFound = errors.New("staff member not found at location")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedData возвращается, когда сохранённые данные расписания
	// не парсятся; ошибка содержит идентификацию записи-источника
	ErrMalformedData = errors.New("malformed schedule data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
