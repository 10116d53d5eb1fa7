package model

import "time"

// TimeBlock is one availability window within a day, as captured by the
// setup stage. From/To are "HH:mm" clock strings.
type TimeBlock struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// PreferenceProfile is a student's stored scheduling setup. TimeBlocks is
// keyed by day ("sun".."sat"); a day absent from the map has no restriction.
type PreferenceProfile struct {
	StudentID      int                    `json:"-"`
	PreferredDays  []string               `json:"preferredDays"`
	TimeBlocks     map[string][]TimeBlock `json:"timeBlocks"`
	Interests      []string               `json:"interests"`
	CompletedStage int                    `json:"completedStage"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// UpdatePreferencesRequest is the payload for saving the setup stages.
type UpdatePreferencesRequest struct {
	PreferredDays  []string               `json:"preferredDays" binding:"omitempty,dive,oneof=sun mon tue wed thu fri sat"`
	TimeBlocks     map[string][]TimeBlock `json:"timeBlocks"`
	Interests      []string               `json:"interests" binding:"omitempty,dive,min=1,max=80"`
	CompletedStage int                    `json:"completedStage" binding:"min=0,max=5"`
}
