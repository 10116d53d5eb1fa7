package advisor

import (
	"testing"

	"github.com/mavpath/advisor-backend/internal/knowledge"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallbackSections = []knowledge.Section{
	{CourseID: "CSE-1320", CourseTitle: "Intermediate Programming", ProfID: "p1", Days: []string{"mon", "wed"}, Start: "09:00", End: "10:20"},
	{CourseID: "MATH-2326", CourseTitle: "Calculus III", ProfID: "p2", Days: []string{"tue", "thu"}, Start: "13:00", End: "14:20"},
	{CourseID: "HIST-1311", CourseTitle: "US History", ProfID: "p3", Days: []string{"fri"}, Start: "08:00", End: "09:00"},
}

var fallbackProfs = map[string]knowledge.Professor{
	"p1": {ProfID: "p1", Name: "Tiernan", Rating: 4.2},
}

func TestFallbackPlan(t *testing.T) {
	t.Run("filters by preferred days", func(t *testing.T) {
		profile := &model.PreferenceProfile{PreferredDays: []string{"mon"}}

		out := Fallback{}.Plan(profile, fallbackSections, fallbackProfs, "")
		require.Contains(t, out.Schedule, "mon")
		require.Contains(t, out.Schedule, "wed")
		assert.NotContains(t, out.Schedule, "tue")
		assert.Equal(t, "CSE-1320", out.Schedule["mon"][0].Course)
		// Professor ID resolves to a display name when known.
		assert.Equal(t, "Tiernan", out.Schedule["mon"][0].Prof)
	})

	t.Run("respects time blocks", func(t *testing.T) {
		profile := &model.PreferenceProfile{
			PreferredDays: []string{"mon", "tue"},
			TimeBlocks: map[string][]model.TimeBlock{
				// Monday availability ends before CSE-1320 does.
				"mon": {{From: "08:00", To: "10:00"}},
			},
		}

		out := Fallback{}.Plan(profile, fallbackSections, fallbackProfs, "")
		assert.NotContains(t, out.Schedule, "mon")
		assert.Contains(t, out.Schedule, "tue")
	})

	t.Run("suggests something when nothing matches", func(t *testing.T) {
		profile := &model.PreferenceProfile{PreferredDays: []string{"sun"}}

		out := Fallback{}.Plan(profile, fallbackSections, fallbackProfs, "")
		assert.NotEmpty(t, out.Schedule)
	})

	t.Run("empty profile takes everything", func(t *testing.T) {
		out := Fallback{}.Plan(nil, fallbackSections, fallbackProfs, "")
		assert.Contains(t, out.Schedule, "mon")
		assert.Contains(t, out.Schedule, "tue")
		assert.Contains(t, out.Schedule, "fri")
	})

	t.Run("interests and notes surface in the message", func(t *testing.T) {
		profile := &model.PreferenceProfile{Interests: []string{"AI", "systems"}}

		out := Fallback{}.Plan(profile, fallbackSections, fallbackProfs, "remote advisor timed out")
		assert.Contains(t, out.Message, "AI, systems")
		assert.Contains(t, out.Message, "remote advisor timed out")
		assert.Equal(t, "fallback", out.Debug["provider"])
	})

	t.Run("no sections yields empty schedule", func(t *testing.T) {
		out := Fallback{}.Plan(nil, nil, nil, "")
		assert.Empty(t, out.Schedule)
		assert.NotEmpty(t, out.Message)
	})
}
