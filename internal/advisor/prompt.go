package advisor

import (
	"fmt"

	"github.com/mavpath/advisor-backend/internal/knowledge"
)

const systemPrompt = `You are an AI academic advisor for the University of Texas at Arlington.
Plan schedules and give thoughtful counseling using the supplied JSON.
Only answer about UTA academics. Respond with a pure JSON object with
these keys:
  - "message": string summary or guidance for the student.
  - "schedule": optional object keyed by day (sun-sat) where each value
    is a list of blocks with keys: from, to, course, title?, prof?.
Times use 24-hour "HH:mm" format and every block must end after it starts.

Keep responses concise, actionable, and tie recommendations to
prerequisites, professor ratings, and time preferences.`

const contextTemplate = `Student setup JSON:
%s

Degree plan JSON:
%s

Professor ratings JSON:
%s

Next-term schedule options JSON:
%s

Student question:
%s`

// BuildPrompt assembles the chat messages for an advisor query: the system
// instructions, prior conversation turns, and a final user message embedding
// the student's setup, the knowledge fixtures, and the question.
func BuildPrompt(userSetup string, kp knowledge.Payload, history []Message, question string) []Message {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{
		Role: "user",
		Content: fmt.Sprintf(contextTemplate,
			userSetup, kp.DegreePlan, kp.Professors, kp.ScheduleOptions, question),
	})
	return messages
}
