package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByClient   BookingStatus = "cancelled_by_client"
	StatusCancelledByLocation BookingStatus = "cancelled_by_location"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents an already-placed booking of one staff member.
// StartAt/EndAt are absolute timestamps; EndAt may be missing on legacy
// records.
type Booking struct {
	ID           int64
	StaffID      int64
	LocationID   int64
	StartAt      time.Time
	EndAt        *time.Time
	BufferBefore int // minutes of setup time before the service
	BufferAfter  int // minutes of cleanup time after the service
	Status       BookingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive returns true if the booking still blocks staff availability
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByClient &&
		b.Status != StatusCancelledByLocation &&
		b.Status != StatusNoShow
}

// HasLegacyEnd сообщает, что у записи отсутствует end_time и будет
// применена legacy-длительность по умолчанию
func (b *Booking) HasLegacyEnd() bool {
	return b.EndAt == nil
}

// EffectiveEnd возвращает время окончания бронирования
// Для legacy-записей без end_time предполагается длительность
// DefaultLegacyBookingDurationMinutes
func (b *Booking) EffectiveEnd() time.Time {
	if b.EndAt != nil {
		return *b.EndAt
	}
	return b.StartAt.Add(DefaultLegacyBookingDurationMinutes * time.Minute)
}

// BufferedWindow возвращает буферизованный интервал бронирования в минутах
// от полуночи дня начала: [start - buffer_before, end + buffer_after)
// Интервал обрезается границами суток
func (b *Booking) BufferedWindow() MinuteInterval {
	dayStart := time.Date(b.StartAt.Year(), b.StartAt.Month(), b.StartAt.Day(), 0, 0, 0, 0, b.StartAt.Location())

	start := b.StartAt.Hour()*60 + b.StartAt.Minute() - b.BufferBefore
	end := int(b.EffectiveEnd().Sub(dayStart).Minutes()) + b.BufferAfter

	if start < 0 {
		start = 0
	}
	if end > MinutesPerDay {
		end = MinutesPerDay
	}

	return MinuteInterval{Start: start, End: end}
}
