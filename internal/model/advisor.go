package model

import "github.com/mavpath/advisor-backend/internal/schedule"

// ConversationTurn is one prior message in the advisory chat.
type ConversationTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// QueryRequest is the payload for an advisor question. Setup optionally
// overrides the persisted preference profile (the UI keeps a local copy and
// may send it inline); when nil the stored profile is used.
type QueryRequest struct {
	Message string             `json:"message" binding:"required,min=1,max=4000"`
	History []ConversationTurn `json:"history" binding:"omitempty,max=40,dive"`
	Setup   *PreferenceProfile `json:"setup,omitempty"`
}

// QueryResponse carries the advisor's reply plus the render-ready calendar
// computed from the suggested schedule.
type QueryResponse struct {
	Message     string                      `json:"message"`
	Schedule    map[string][]schedule.Block `json:"schedule,omitempty"`
	Grid        *schedule.Grid              `json:"grid,omitempty"`
	SlotLabels  []string                    `json:"slotLabels,omitempty"`
	AnyConflict bool                        `json:"anyConflict"`
	Dropped     int                         `json:"droppedEntries"`
	Debug       map[string]any              `json:"debug,omitempty"`
}

// LayoutRequest is the payload for the pure layout endpoint: a wire-format
// week in, an annotated grid out. No advisor round trip.
type LayoutRequest struct {
	Schedule map[string][]schedule.Block `json:"schedule" binding:"required"`
}

// LayoutResponse is the annotated calendar for a LayoutRequest.
type LayoutResponse struct {
	Grid        schedule.Grid `json:"grid"`
	SlotLabels  []string      `json:"slotLabels"`
	AnyConflict bool          `json:"anyConflict"`
	Dropped     int           `json:"droppedEntries"`
}
