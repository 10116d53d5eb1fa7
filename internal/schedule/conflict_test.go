package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, day Day, from, to, course string) Event {
	t.Helper()
	ev, ok := NewEvent(day, from, to, course, "", "")
	require.True(t, ok, "%s %s-%s should be valid", course, from, to)
	return ev
}

func TestDetectConflicts(t *testing.T) {
	t.Run("overlapping pair flags both", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Monday, "09:00", "10:20", "CSE-1320"),
			mustEvent(t, Monday, "10:00", "11:00", "MATH-2326"),
		}

		c := DetectConflicts(events)
		assert.True(t, c.Any)
		assert.Equal(t, []bool{true, true}, c.Flags)
	})

	t.Run("shifted pair does not conflict", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Monday, "09:00", "10:20", "CSE-1320"),
			mustEvent(t, Monday, "10:20", "11:20", "MATH-2326"),
		}

		c := DetectConflicts(events)
		assert.False(t, c.Any)
		assert.Equal(t, []bool{false, false}, c.Flags)
	})

	t.Run("one minute past back-to-back conflicts", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Monday, "09:00", "10:21", "CSE-1320"),
			mustEvent(t, Monday, "10:20", "11:20", "MATH-2326"),
		}

		c := DetectConflicts(events)
		assert.True(t, c.Any)
		assert.Equal(t, []bool{true, true}, c.Flags)
	})

	t.Run("different days never conflict", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Monday, "09:00", "10:20", "CSE-1320"),
			mustEvent(t, Tuesday, "09:00", "10:20", "MATH-2326"),
		}

		c := DetectConflicts(events)
		assert.False(t, c.Any)
	})

	t.Run("zero and one event days", func(t *testing.T) {
		assert.False(t, DetectConflicts(nil).Any)

		single := []Event{mustEvent(t, Friday, "09:00", "10:00", "CSE-1320")}
		c := DetectConflicts(single)
		assert.False(t, c.Any)
		assert.Equal(t, []bool{false}, c.Flags)
	})

	t.Run("detection is input order independent", func(t *testing.T) {
		a := mustEvent(t, Monday, "09:00", "10:00", "A")
		b := mustEvent(t, Monday, "10:00", "11:00", "B")
		d := mustEvent(t, Monday, "11:00", "12:00", "D")

		orders := [][]Event{
			{a, b, d},
			{d, b, a},
			{b, d, a},
		}
		for _, events := range orders {
			c := DetectConflicts(events)
			assert.False(t, c.Any, "non-overlapping set must stay clean in any order")
		}
	})

	t.Run("containment flags the contained pair", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Thursday, "09:00", "12:00", "LONG"),
			mustEvent(t, Thursday, "09:30", "10:00", "SHORT"),
		}

		c := DetectConflicts(events)
		assert.True(t, c.Any)
		assert.Equal(t, []bool{true, true}, c.Flags)
	})

	t.Run("symmetry", func(t *testing.T) {
		events := []Event{
			mustEvent(t, Wednesday, "10:00", "11:00", "A"),
			mustEvent(t, Wednesday, "10:30", "11:30", "B"),
			mustEvent(t, Wednesday, "13:00", "14:00", "C"),
		}

		c := DetectConflicts(events)
		assert.Equal(t, []bool{true, true, false}, c.Flags)
	})
}
