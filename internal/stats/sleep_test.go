package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleepDuration(t *testing.T) {
	tests := []struct {
		bed, wake TimeOfDay
		want      float64
	}{
		{TimeOfDay{22, 0}, TimeOfDay{6, 0}, 8},
		{TimeOfDay{23, 30}, TimeOfDay{0, 15}, 0.75},
		{TimeOfDay{7, 0}, TimeOfDay{7, 0}, 0},
		{TimeOfDay{13, 0}, TimeOfDay{14, 30}, 1.5},
		{TimeOfDay{7, 30}, TimeOfDay{7, 0}, 23.5},
		{TimeOfDay{0, 0}, TimeOfDay{23, 59}, 23 + 59.0/60},
	}
	for _, tt := range tests {
		got := SleepDuration(tt.bed, tt.wake)
		assert.InDelta(t, tt.want, got, 1e-9, "%s -> %s", tt.bed, tt.wake)
	}
}

func TestSleepDurationRange(t *testing.T) {
	for bh := 0; bh < 24; bh++ {
		for wh := 0; wh < 24; wh++ {
			for _, m := range [][2]int{{0, 0}, {59, 0}, {0, 59}, {30, 15}} {
				d := SleepDuration(TimeOfDay{bh, m[0]}, TimeOfDay{wh, m[1]})
				if d < 0 || d >= 24 {
					t.Fatalf("duration %v out of range for %02d:%02d -> %02d:%02d", d, bh, m[0], wh, m[1])
				}
			}
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("06:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 6, Minute: 5}, tod)
	assert.Equal(t, "06:05", tod.String())

	for _, in := range []string{"", "25:00", "12:60", "noon"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, in)
	}
}

func TestClockOf(t *testing.T) {
	ts := time.Date(2024, 1, 1, 21, 45, 10, 0, time.UTC)
	assert.Equal(t, TimeOfDay{21, 45}, ClockOf(ts))
}
