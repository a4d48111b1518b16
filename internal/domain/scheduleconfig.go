package domain

import "time"

// LocationScheduleConfig represents the slot generation settings of a
// location. Absence of a row means service defaults apply.
type LocationScheduleConfig struct {
	ID                  int64
	LocationID          int64
	SlotIntervalMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultScheduleConfig возвращает конфигурацию по умолчанию для локаций
// без собственной настройки
func DefaultScheduleConfig(locationID int64) *LocationScheduleConfig {
	return &LocationScheduleConfig{
		LocationID:          locationID,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
	}
}
