package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{status: StatusPending, want: true},
		{status: StatusConfirmed, want: true},
		{status: StatusInProgress, want: true},
		{status: StatusCompleted, want: true},
		{status: StatusCancelledByClient, want: false},
		{status: StatusCancelledByLocation, want: false},
		{status: StatusNoShow, want: false},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.status}
		assert.Equal(t, tt.want, b.IsActive(), "status=%s", tt.status)
	}
}

func TestBooking_EffectiveEnd(t *testing.T) {
	end := date(14, 0)
	withEnd := Booking{StartAt: date(13, 0), EndAt: &end}
	assert.Equal(t, end, withEnd.EffectiveEnd())
	assert.False(t, withEnd.HasLegacyEnd())

	// legacy-запись без end_at получает длительность по умолчанию
	legacy := Booking{StartAt: date(13, 0)}
	assert.Equal(t, date(14, 0), legacy.EffectiveEnd())
	assert.True(t, legacy.HasLegacyEnd())
}

func TestBooking_BufferedWindow(t *testing.T) {
	end := date(14, 0)

	tests := []struct {
		name    string
		booking Booking
		want    MinuteInterval
	}{
		{
			name:    "no buffers",
			booking: Booking{StartAt: date(13, 0), EndAt: &end},
			want:    MinuteInterval{Start: 13 * 60, End: 14 * 60},
		},
		{
			name:    "with buffers",
			booking: Booking{StartAt: date(13, 0), EndAt: &end, BufferBefore: 10, BufferAfter: 15},
			want:    MinuteInterval{Start: 13*60 - 10, End: 14*60 + 15},
		},
		{
			name:    "legacy end gets default duration",
			booking: Booking{StartAt: date(13, 0)},
			want:    MinuteInterval{Start: 13 * 60, End: 14 * 60},
		},
		{
			name:    "clamped to start of day",
			booking: Booking{StartAt: date(0, 10), EndAt: &end, BufferBefore: 30},
			want:    MinuteInterval{Start: 0, End: 14 * 60},
		},
		{
			name:    "clamped to end of day",
			booking: Booking{StartAt: date(23, 30), BufferAfter: 60},
			want:    MinuteInterval{Start: 23*60 + 30, End: MinutesPerDay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.BufferedWindow())
		})
	}
}
