package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mavpath/advisor-backend/internal/config"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/schedule"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrNoSuggestedSchedule is returned by ExportICS when the student has not
// received a schedule suggestion yet.
var ErrNoSuggestedSchedule = errors.New("no suggested schedule cached for student")

// scheduleTTL is how long a suggested schedule stays exportable.
const scheduleTTL = 7 * 24 * time.Hour

// ScheduleService runs wire-format weekly schedules through the validation,
// conflict-detection, and layout core, and keeps each student's latest
// suggestion cached for the ICS export endpoint.
type ScheduleService struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(rdb *redis.Client, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		rdb: rdb,
		log: log.With().Str("component", "schedule_service").Logger(),
	}
}

// LayoutWeek validates a weekly payload and computes its annotated calendar
// grid. Malformed entries are dropped from the result; each drop is logged
// and counted so callers can surface how much of the payload was unusable.
func (s *ScheduleService) LayoutWeek(payload map[string][]schedule.Block) model.LayoutResponse {
	dropped := 0
	events := schedule.BuildWeek(payload, func(dayKey string, block schedule.Block) {
		dropped++
		s.log.Warn().
			Str("day", dayKey).
			Str("from", block.From).
			Str("to", block.To).
			Str("course", block.Course).
			Msg("Dropped malformed schedule entry")
	})

	conflicts := schedule.DetectConflicts(events)
	grid := schedule.Layout(events, conflicts)

	return model.LayoutResponse{
		Grid:        grid,
		SlotLabels:  grid.Labels(),
		AnyConflict: conflicts.Any,
		Dropped:     dropped,
	}
}

// CacheSuggested stores a student's latest suggested schedule for export.
func (s *ScheduleService) CacheSuggested(ctx context.Context, studentID int, payload map[string][]schedule.Block) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return
	}
	key := config.CacheKey.StudentScheduleKey(studentID)
	if err := s.rdb.Set(ctx, key, encoded, scheduleTTL).Err(); err != nil {
		s.log.Warn().Err(err).Int("student_id", studentID).Msg("schedule cache write failed")
	}
}

// ExportICS renders the student's cached suggested schedule as an iCalendar
// payload anchored to the current week.
func (s *ScheduleService) ExportICS(ctx context.Context, studentID int) (string, error) {
	key := config.CacheKey.StudentScheduleKey(studentID)

	encoded, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSuggestedSchedule
		}
		return "", fmt.Errorf("read cached schedule: %w", err)
	}

	var payload map[string][]schedule.Block
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return "", fmt.Errorf("decode cached schedule: %w", err)
	}

	events := schedule.BuildWeek(payload, nil)
	return schedule.ExportICS(events, time.Now()), nil
}
