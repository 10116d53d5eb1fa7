package advisor

import (
	"encoding/json"
	"strings"
)

// reply is the JSON shape the prompt demands from the model.
type reply struct {
	Message  string          `json:"message"`
	Schedule json.RawMessage `json:"schedule"`
}

// ParseReply extracts the advisor's {message, schedule} object from raw model
// output. Models wrap JSON in code fences or prose despite instructions, so
// the payload is located with extractJSON first. Output that cannot be parsed
// at all becomes a plain-text message with no schedule.
func ParseReply(text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Message: "No response received"}
	}

	snippet := extractJSON(text)

	var r reply
	if err := json.Unmarshal([]byte(snippet), &r); err != nil || r.Message == "" {
		return Result{Message: text}
	}

	result := Result{Message: r.Message}
	if len(r.Schedule) > 0 && string(r.Schedule) != "null" {
		if err := json.Unmarshal(r.Schedule, &result.Schedule); err != nil {
			// Keep the message; a malformed schedule degrades to none.
			result.Schedule = nil
		}
	}
	return result
}

// extractJSON pulls a JSON object or array out of model output that may be
// wrapped in ```json fences, plain fences, or surrounding prose.
func extractJSON(s string) string {
	if fenced, ok := extractFenced(s, "```json"); ok {
		return fenced
	}
	if fenced, ok := extractFenced(s, "```"); ok {
		return fenced
	}

	// Fall back to the outermost braces in the raw text.
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return s
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return s
	}
	return s[start : end+1]
}

func extractFenced(s, fence string) (string, bool) {
	idx := strings.Index(s, fence)
	if idx == -1 {
		return "", false
	}
	start := idx + len(fence)
	for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
		start++
	}
	end := strings.Index(s[start:], "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimRight(s[start:start+end], "\r\n"), true
}
