package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	t.Run("empty input yields empty-grid marker", func(t *testing.T) {
		grid := Layout(nil, Conflicts{})
		assert.True(t, grid.Empty)
		assert.Empty(t, grid.Slots)
		assert.Empty(t, grid.Placements)
	})

	t.Run("monday conflict scenario", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Monday, "09:00", "10:20", "CSE-1320"),
			mustEvent(t, Monday, "10:00", "11:00", "MATH-2326"),
		}
		conflicts := DetectConflicts(events)
		require.True(t, conflicts.Any)

		grid := Layout(events, conflicts)
		assert.False(t, grid.Empty)
		assert.Equal(t, 540, grid.Start)  // 09:00
		assert.Equal(t, 660, grid.End)    // 11:00
		assert.Equal(t, []int{540, 570, 600, 630}, grid.Slots)

		require.Len(t, grid.Placements, 2)
		// 09:00-10:20 spans rows [1,4): slots 09:00, 09:30, 10:00.
		assert.Equal(t, Placement{DayColumn: 2, RowStart: 1, RowEnd: 4, Conflict: true}, grid.Placements[0])
		// 10:00-11:00 spans rows [3,5).
		assert.Equal(t, Placement{DayColumn: 2, RowStart: 3, RowEnd: 5, Conflict: true}, grid.Placements[1])
	})

	t.Run("off-slot bounds round outward to half hours", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Friday, "09:10", "10:05", "CSE-1320"),
		}

		grid := Layout(events, DetectConflicts(events))
		assert.Equal(t, 540, grid.Start) // floor(09:10) = 09:00
		assert.Equal(t, 630, grid.End)   // ceil(10:05) = 10:30
		assert.Zero(t, grid.Start%SlotMinutes)
		assert.Zero(t, grid.End%SlotMinutes)
		assert.LessOrEqual(t, grid.Start, events[0].Start)
		assert.GreaterOrEqual(t, grid.End, events[0].End)

		require.Len(t, grid.Placements, 1)
		assert.Equal(t, Placement{DayColumn: 6, RowStart: 1, RowEnd: 4}, grid.Placements[0])
	})

	t.Run("day columns follow sun-first order", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Sunday, "09:00", "10:00", "A"),
			mustEvent(t, Saturday, "09:00", "10:00", "B"),
		}

		grid := Layout(events, DetectConflicts(events))
		assert.Equal(t, 1, grid.Placements[0].DayColumn)
		assert.Equal(t, 7, grid.Placements[1].DayColumn)
	})

	t.Run("grid spans the whole week's extremes", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Monday, "08:00", "09:00", "EARLY"),
			mustEvent(t, Thursday, "17:30", "18:45", "LATE"),
		}

		grid := Layout(events, DetectConflicts(events))
		assert.Equal(t, 480, grid.Start)  // 08:00
		assert.Equal(t, 1140, grid.End)   // 19:00
		assert.Len(t, grid.Slots, 22)
	})

	t.Run("slot labels format as clock strings", func(t *testing.T) {
		events := []Event{mustEvent(t, Monday, "09:00", "10:00", "A")}
		grid := Layout(events, DetectConflicts(events))
		assert.Equal(t, []string{"09:00", "09:30"}, grid.Labels())
	})
}

func TestExportICS(t *testing.T) {
	events := []Event{
		mustEvent(t, Monday, "09:00", "10:20", "CSE-1320"),
	}
	// 2026-08-23 is a Sunday, so the Monday event lands on the 24th.
	anchor := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	out := ExportICS(events, anchor)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:CSE-1320")
	assert.Contains(t, out, "DTSTART:20260824T090000Z")
	assert.Contains(t, out, "END:VCALENDAR")
}
