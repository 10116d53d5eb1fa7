package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"midnight", "00:00", 0},
		{"morning", "09:00", 540},
		{"with minutes", "10:20", 620},
		{"last minute", "23:59", 1439},
		{"no padding", "9:5", 545},
		{"missing minute", "10", 600},
		{"empty string", "", 0},
		{"non-numeric", "bad", 0},
		{"non-numeric minute", "10:xx", 600},
		{"non-numeric hour", "xx:30", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClock(tt.input))
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{"midnight", 0, "00:00"},
		{"single digit hour", 545, "09:05"},
		{"afternoon", 870, "14:30"},
		{"last minute", 1439, "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.input))
		})
	}
}

// Every minute value in [0, 1440) survives a format/parse round trip.
func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		assert.Equal(t, m, ParseClock(FormatClock(m)), "minute %d", m)
	}
}
