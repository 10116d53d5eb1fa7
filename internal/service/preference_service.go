package service

import (
	"context"
	"fmt"

	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/repository"
	"github.com/mavpath/advisor-backend/internal/schedule"
)

// PreferenceService handles the setup-stage preference capture.
type PreferenceService struct {
	preferenceRepo *repository.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(preferenceRepo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{preferenceRepo: preferenceRepo}
}

// GetByStudentID retrieves a student's preference profile.
func (s *PreferenceService) GetByStudentID(ctx context.Context, studentID int) (*model.PreferenceProfile, error) {
	return s.preferenceRepo.GetByStudentID(ctx, studentID)
}

// Save validates and persists a student's preference profile. The returned
// field map is non-nil when a time block fails validation; nothing is
// persisted in that case. Unlike calendar rendering, where bad intervals
// are dropped silently, setup capture rejects them with a user-facing
// message before they are stored.
func (s *PreferenceService) Save(ctx context.Context, studentID int, req *model.UpdatePreferencesRequest) (*model.PreferenceProfile, map[string]string, error) {
	if fields := ValidateTimeBlocks(req.TimeBlocks); fields != nil {
		return nil, fields, nil
	}

	profile := &model.PreferenceProfile{
		StudentID:      studentID,
		PreferredDays:  req.PreferredDays,
		TimeBlocks:     req.TimeBlocks,
		Interests:      req.Interests,
		CompletedStage: req.CompletedStage,
	}
	if err := s.preferenceRepo.Upsert(ctx, profile); err != nil {
		return nil, nil, err
	}
	return profile, nil, nil
}

// ValidateTimeBlocks applies the interval contract to captured availability
// windows: a known day key, both endpoints present, and start strictly
// before end. Returns nil when everything is valid, otherwise a field name
// to message map suitable for a validation error response.
func ValidateTimeBlocks(timeBlocks map[string][]model.TimeBlock) map[string]string {
	fields := make(map[string]string)

	for dayKey, blocks := range timeBlocks {
		if _, ok := schedule.ParseDay(dayKey); !ok {
			fields["timeBlocks."+dayKey] = "unknown day key"
			continue
		}
		for i, block := range blocks {
			name := fmt.Sprintf("timeBlocks.%s[%d]", dayKey, i)
			if block.From == "" || block.To == "" {
				fields[name] = "both a start and an end time are required"
				continue
			}
			if schedule.ParseClock(block.From) >= schedule.ParseClock(block.To) {
				fields[name] = "the start time must be before the end time"
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
