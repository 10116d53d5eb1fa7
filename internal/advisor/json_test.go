package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw json object",
			input:    `{"message": "hi"}`,
			expected: `{"message": "hi"}`,
		},
		{
			name:     "json with leading prose",
			input:    `Here is the plan: {"message": "hi"}`,
			expected: `{"message": "hi"}`,
		},
		{
			name:     "json in json code block",
			input:    "```json\n{\"message\": \"hi\"}\n```",
			expected: `{"message": "hi"}`,
		},
		{
			name:     "json in plain code block",
			input:    "```\n{\"message\": \"hi\"}\n```",
			expected: `{"message": "hi"}`,
		},
		{
			name:     "json array",
			input:    `[{"id": 1}]`,
			expected: `[{"id": 1}]`,
		},
		{
			name:     "no json at all",
			input:    "plain advice text",
			expected: "plain advice text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSON(tt.input))
		})
	}
}

func TestParseReply(t *testing.T) {
	t.Run("message with schedule", func(t *testing.T) {
		out := ParseReply("```json\n" + `{
			"message": "Take CSE-1320 on Monday.",
			"schedule": {"mon": [{"from": "09:00", "to": "10:20", "course": "CSE-1320"}]}
		}` + "\n```")

		assert.Equal(t, "Take CSE-1320 on Monday.", out.Message)
		require.Contains(t, out.Schedule, "mon")
		assert.Equal(t, "CSE-1320", out.Schedule["mon"][0].Course)
	})

	t.Run("message without schedule", func(t *testing.T) {
		out := ParseReply(`{"message": "You are on track.", "schedule": null}`)
		assert.Equal(t, "You are on track.", out.Message)
		assert.Nil(t, out.Schedule)
	})

	t.Run("unparseable output becomes plain message", func(t *testing.T) {
		out := ParseReply("I could not produce JSON, sorry.")
		assert.Equal(t, "I could not produce JSON, sorry.", out.Message)
		assert.Nil(t, out.Schedule)
	})

	t.Run("malformed schedule keeps the message", func(t *testing.T) {
		out := ParseReply(`{"message": "ok", "schedule": [1, 2]}`)
		assert.Equal(t, "ok", out.Message)
		assert.Nil(t, out.Schedule)
	})

	t.Run("empty output", func(t *testing.T) {
		out := ParseReply("   ")
		assert.Equal(t, "No response received", out.Message)
	})
}
