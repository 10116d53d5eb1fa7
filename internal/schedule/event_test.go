package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		ev, ok := NewEvent(Monday, "09:00", "10:20", "CSE-1320", "Intermediate Programming", "Tiernan")
		require.True(t, ok)
		assert.Equal(t, Monday, ev.Day)
		assert.Equal(t, 540, ev.Start)
		assert.Equal(t, 620, ev.End)
		assert.Equal(t, "CSE-1320", ev.Course)
	})

	t.Run("inverted interval rejected", func(t *testing.T) {
		_, ok := NewEvent(Monday, "11:00", "10:00", "CSE-1320", "", "")
		assert.False(t, ok)
	})

	t.Run("zero-length interval rejected", func(t *testing.T) {
		_, ok := NewEvent(Monday, "10:00", "10:00", "CSE-1320", "", "")
		assert.False(t, ok)
	})

	t.Run("empty endpoints rejected", func(t *testing.T) {
		_, ok := NewEvent(Monday, "", "", "CSE-1320", "", "")
		assert.False(t, ok)
	})

	// An unparseable start defaults to 00:00, which still satisfies the
	// strict start < end check. The event is kept, spanning midnight to the
	// parsed end.
	t.Run("unparseable start anchors to midnight", func(t *testing.T) {
		ev, ok := NewEvent(Tuesday, "bad", "10:00", "MATH-2326", "", "")
		require.True(t, ok)
		assert.Equal(t, 0, ev.Start)
		assert.Equal(t, 600, ev.End)
	})
}

func TestBuildWeek(t *testing.T) {
	t.Run("flattens in calendar order", func(t *testing.T) {
		payload := map[string][]Block{
			"wed": {{From: "13:00", To: "14:00", Course: "PHYS-1443"}},
			"mon": {
				{From: "09:00", To: "10:20", Course: "CSE-1320"},
				{From: "10:00", To: "11:00", Course: "MATH-2326"},
			},
		}

		events := BuildWeek(payload, nil)
		require.Len(t, events, 3)
		assert.Equal(t, "CSE-1320", events[0].Course)
		assert.Equal(t, "MATH-2326", events[1].Course)
		assert.Equal(t, "PHYS-1443", events[2].Course)
		assert.Equal(t, Monday, events[0].Day)
		assert.Equal(t, Wednesday, events[2].Day)
	})

	t.Run("drops malformed entries through the hook", func(t *testing.T) {
		payload := map[string][]Block{
			"mon": {
				{From: "09:00", To: "10:20", Course: "CSE-1320"},
				{From: "11:00", To: "10:00", Course: "HIST-1311"}, // inverted
			},
			"xyz": {{From: "09:00", To: "10:00", Course: "ART-1301"}}, // unknown day
		}

		var dropped []string
		events := BuildWeek(payload, func(dayKey string, b Block) {
			dropped = append(dropped, dayKey+"/"+b.Course)
		})

		require.Len(t, events, 1)
		assert.Equal(t, "CSE-1320", events[0].Course)
		assert.ElementsMatch(t, []string{"mon/HIST-1311", "xyz/ART-1301"}, dropped)
	})

	t.Run("empty payload yields no events", func(t *testing.T) {
		assert.Empty(t, BuildWeek(map[string][]Block{}, nil))
		assert.Empty(t, BuildWeek(nil, nil))
	})
}
