package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinuteInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    MinuteInterval
		b    MinuteInterval
		want bool
	}{
		{
			name: "partial overlap",
			a:    MinuteInterval{Start: 600, End: 660},
			b:    MinuteInterval{Start: 630, End: 690},
			want: true,
		},
		{
			name: "b inside a",
			a:    MinuteInterval{Start: 600, End: 720},
			b:    MinuteInterval{Start: 630, End: 660},
			want: true,
		},
		{
			name: "identical intervals",
			a:    MinuteInterval{Start: 600, End: 660},
			b:    MinuteInterval{Start: 600, End: 660},
			want: true,
		},
		{
			name: "touching at boundary is not overlap",
			a:    MinuteInterval{Start: 600, End: 660},
			b:    MinuteInterval{Start: 660, End: 720},
			want: false,
		},
		{
			name: "disjoint",
			a:    MinuteInterval{Start: 600, End: 660},
			b:    MinuteInterval{Start: 700, End: 760},
			want: false,
		},
		{
			name: "empty interval never overlaps",
			a:    MinuteInterval{Start: 600, End: 600},
			b:    MinuteInterval{Start: 540, End: 720},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMinuteInterval_Contains(t *testing.T) {
	outer := MinuteInterval{Start: 540, End: 1080}

	assert.True(t, outer.Contains(MinuteInterval{Start: 600, End: 660}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(MinuteInterval{Start: 500, End: 660}))
	assert.False(t, outer.Contains(MinuteInterval{Start: 600, End: 1100}))
}

func TestMinuteInterval_IsValid(t *testing.T) {
	assert.True(t, MinuteInterval{Start: 0, End: MinutesPerDay}.IsValid())
	assert.True(t, MinuteInterval{Start: 600, End: 600}.IsValid())
	assert.False(t, MinuteInterval{Start: -10, End: 600}.IsValid())
	assert.False(t, MinuteInterval{Start: 600, End: 1500}.IsValid())
	assert.False(t, MinuteInterval{Start: 660, End: 600}.IsValid())
}
