package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BusinessDayConfig represents the location-wide opening hours for one day
// of week. A hard ceiling that no staff-level shift may exceed.
type BusinessDayConfig struct {
	ID         int64
	LocationID int64
	DayOfWeek  int // 0 = Sunday .. 6 = Saturday
	Start      types.TimeString
	End        types.TimeString
	IsClosed   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BusinessWindow is the resolved open/close window of a location on one
// concrete date, in minutes since midnight.
type BusinessWindow struct {
	Open   int
	Close  int
	Closed bool
}

// FullyOpenWindow возвращает окно без ограничений (00:00–24:00)
// Отсутствие конфигурации рабочих часов трактуется как "открыто весь день",
// а не "закрыто" - legacy-поведение, когда доступность ограничивали
// только смены персонала
func FullyOpenWindow() BusinessWindow {
	return BusinessWindow{Open: 0, Close: MinutesPerDay, Closed: false}
}
