package service

import (
	"testing"

	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTimeBlocks(t *testing.T) {
	t.Run("valid blocks pass", func(t *testing.T) {
		blocks := map[string][]model.TimeBlock{
			"mon": {{From: "08:00", To: "12:00"}, {From: "13:00", To: "17:00"}},
			"fri": {{From: "09:00", To: "11:00"}},
		}
		assert.Nil(t, ValidateTimeBlocks(blocks))
	})

	t.Run("empty map passes", func(t *testing.T) {
		assert.Nil(t, ValidateTimeBlocks(nil))
		assert.Nil(t, ValidateTimeBlocks(map[string][]model.TimeBlock{}))
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		blocks := map[string][]model.TimeBlock{
			"mon": {{From: "14:00", To: "09:00"}},
		}
		fields := ValidateTimeBlocks(blocks)
		require.Contains(t, fields, "timeBlocks.mon[0]")
		assert.Contains(t, fields["timeBlocks.mon[0]"], "before the end time")
	})

	t.Run("equal endpoints rejected", func(t *testing.T) {
		blocks := map[string][]model.TimeBlock{
			"tue": {{From: "09:00", To: "09:00"}},
		}
		assert.Contains(t, ValidateTimeBlocks(blocks), "timeBlocks.tue[0]")
	})

	t.Run("empty endpoint rejected", func(t *testing.T) {
		blocks := map[string][]model.TimeBlock{
			"wed": {{From: "", To: "10:00"}},
		}
		fields := ValidateTimeBlocks(blocks)
		require.Contains(t, fields, "timeBlocks.wed[0]")
		assert.Contains(t, fields["timeBlocks.wed[0]"], "required")
	})

	t.Run("unknown day key rejected", func(t *testing.T) {
		blocks := map[string][]model.TimeBlock{
			"monday": {{From: "09:00", To: "10:00"}},
		}
		assert.Contains(t, ValidateTimeBlocks(blocks), "timeBlocks.monday")
	})

	t.Run("only bad entries are reported", func(t *testing.T) {
		blocks := map[string][]model.TimeBlock{
			"mon": {{From: "09:00", To: "10:00"}, {From: "11:00", To: "10:30"}},
		}
		fields := ValidateTimeBlocks(blocks)
		assert.Len(t, fields, 1)
		assert.Contains(t, fields, "timeBlocks.mon[1]")
	})
}
