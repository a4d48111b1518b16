package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 30
	DefaultWeekDays            = 7

	// DefaultLegacyBookingDurationMinutes - длительность, которую получают
	// legacy-записи бронирований без end_time
	DefaultLegacyBookingDurationMinutes = 60
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MinBufferMinutes   = 0
	MaxBufferMinutes   = 240 // 4 hours
	MinWeekDays        = 1
	MaxWeekDays        = 31
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay количество минут в сутках; все интервалы внутри дня лежат в [0, 1440]
const MinutesPerDay = 24 * 60

// AllowedSlotIntervals допустимые шаги генерации слотов (в минутах)
var AllowedSlotIntervals = []int{5, 10, 15, 20, 30, 60}

// IsAllowedSlotInterval проверяет, что шаг генерации слотов входит в список допустимых
func IsAllowedSlotInterval(interval int) bool {
	for _, v := range AllowedSlotIntervals {
		if v == interval {
			return true
		}
	}
	return false
}

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не блокируют доступность персонала
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledByLocation,
	StatusNoShow,
}
