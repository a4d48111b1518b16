package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// WeeklyShift represents the recurring weekly working hours of one staff
// member on one day of week. One row per staff per day-of-week.
type WeeklyShift struct {
	ID         int64
	StaffID    int64
	DayOfWeek  int // 0 = Sunday .. 6 = Saturday
	Start      types.TimeString
	End        types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	IsHoliday  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ShiftException represents a date-specific override of the weekly shift.
// Zero or one row per staff per calendar date. When present, it replaces
// the weekly shift for that date wholesale - fields are never merged.
type ShiftException struct {
	ID         int64
	StaffID    int64
	Date       time.Time
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	IsHoliday  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveShift is the resolved working window of one staff member on one
// concrete date, after applying exception-over-baseline precedence.
type EffectiveShift struct {
	StaffID     int64
	Start       types.TimeString
	End         types.TimeString
	BreakStart  *types.TimeString
	BreakEnd    *types.TimeString
	Unavailable bool
}

// HasBreak reports whether the shift defines a break interval.
func (s *EffectiveShift) HasBreak() bool {
	return s.BreakStart != nil && s.BreakEnd != nil
}

// DayOfWeek возвращает день недели даты в диапазоне 0..6 (0 = воскресенье)
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}
