package availability

import "errors"

var (
	// ErrMalformedTime возвращается, когда сохранённое время не парсится
	// Ошибка всегда содержит идентификацию записи-источника
	ErrMalformedTime = errors.New("availability: malformed time value")

	// ErrInvalidInterval возвращается при недопустимом шаге генерации слотов
	ErrInvalidInterval = errors.New("availability: invalid slot generation interval")
)
