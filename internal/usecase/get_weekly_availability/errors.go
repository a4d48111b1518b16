package get_weekly_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStaffNotFound возвращается, когда предпочитаемый сотрудник
	// не найден среди активного персонала локации
	ErrStaffNotFound = errors.New("staff member not found at location")
)
