// Package schedule implements the weekly-schedule core: clock arithmetic,
// interval validation, per-day conflict detection, and calendar grid layout.
// It is pure and stateless; every call receives a full event set and returns
// a full result.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an "HH:mm" clock string into minutes since midnight.
// Missing or non-numeric components are treated as zero, so ParseClock never
// fails; "bad" parses to 0 (00:00). Semantic validity is the caller's job;
// see NewEvent, which enforces start < end.
func ParseClock(value string) int {
	parts := strings.Split(value, ":")

	hours := 0
	if len(parts) > 0 {
		hours, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}

	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}

	return hours*60 + minutes
}

// FormatClock converts minutes since midnight into a zero-padded "HH:mm"
// string. Values outside [0, 1440) are not wrapped; callers guarantee range.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
