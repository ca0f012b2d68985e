package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"midnight", "00:00", 0},
		{"morning", "09:30", 570},
		{"end of day", "23:59", 1439},
		{"single digit hour", "9:05", 545},
		{"empty", "", 0},
		{"garbage", "noon", 0},
		{"hour out of range", "24:00", 0},
		{"minute out of range", "10:60", 0},
		{"negative", "-1:00", 0},
		{"signed hour", "+9:00", 0},
		{"signed zero hour", "-0:30", 0},
		{"signed minute", "09:+5", 0},
		{"inner space", "9: 05", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesSinceMidnight(tt.in))
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("+9:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("13:00").IsBefore("12:59"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}

func TestElapsedMinutes(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedMinutes(start, start))
	assert.Equal(t, 12, ElapsedMinutes(start, start.Add(12*time.Minute+59*time.Second)))
	assert.Equal(t, 0, ElapsedMinutes(start, start.Add(-5*time.Minute)), "clock skew is clamped")
	assert.Equal(t, 0, ElapsedMinutes(time.Time{}, start))
}
