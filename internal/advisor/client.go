// Package advisor talks to the remote language-model endpoint that suggests
// weekly schedules, and falls back to a deterministic local planner when the
// endpoint is not configured or fails. Suggested schedules are opaque here;
// validation, conflict detection, and layout happen in internal/schedule.
package advisor

import (
	"context"

	"github.com/mavpath/advisor-backend/internal/schedule"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for LLM providers.
type Client interface {
	// Chat sends messages to the LLM and returns the raw text response.
	Chat(ctx context.Context, messages []Message) (string, error)
}

// Result is the normalized advisor reply: a textual answer plus an optional
// suggested weekly schedule in wire format (day-keyed blocks).
type Result struct {
	Message  string
	Schedule map[string][]schedule.Block
	Debug    map[string]any
}
