// Package websocket defines the frame schema for the live advisory chat.
package websocket

import "github.com/mavpath/advisor-backend/internal/model"

// Frame types sent by the server.
const (
	TypeAnswer = "answer"
	TypeError  = "error"
)

// RequestPayload is one inbound chat frame: an advisor query.
type RequestPayload struct {
	Message string                   `json:"message"`
	History []model.ConversationTurn `json:"history,omitempty"`
	Setup   *model.PreferenceProfile `json:"setup,omitempty"`
}

// ResponsePayload is one outbound chat frame.
type ResponsePayload struct {
	Type   string               `json:"type"`
	Answer *model.QueryResponse `json:"answer,omitempty"`
	Error  string               `json:"error,omitempty"`
}
