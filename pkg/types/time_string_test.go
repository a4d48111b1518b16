package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "09:30", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "legacy HH:MM:SS", input: "10:15:00", want: "10:15"},
		{name: "legacy with seconds", input: "10:15:59", want: "10:15"},
		{name: "hours out of range", input: "25:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "24 with minutes", input: "24:01", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "missing zero padding", input: "9:30", wantErr: true},
		{name: "trailing garbage in minutes", input: "10:3a", wantErr: true},
		{name: "length-matched junk", input: "1:3:5", wantErr: true},
		{name: "garbage in hours", input: "1a:30", wantErr: true},
		{name: "wrong separator", input: "10.30", wantErr: true},
		{name: "garbage in seconds", input: "10:30:5x", wantErr: true},
		{name: "seconds out of range", input: "10:30:60", wantErr: true},
		{name: "wrong second separator", input: "10:30.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 570},
		{input: "14:07", want: 847},
		{input: "24:00", want: 1440},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []TimeString{"bad", "10:3a", "1a:30", "1:3:5", "10.30"} {
		_, err := bad.Minutes()
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Сдвиг за границу суток недопустим
	_, err = ts.AddMinutes(15 * 60)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 14, 7, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:07"), NewTimeString(moment))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	_, err = NewTimeStringFromMinutes(-1)
	assert.Error(t, err)

	_, err = NewTimeStringFromMinutes(1441)
	assert.Error(t, err)
}
