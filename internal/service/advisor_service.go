package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mavpath/advisor-backend/internal/advisor"
	"github.com/mavpath/advisor-backend/internal/model"
	"github.com/mavpath/advisor-backend/internal/repository"
	"github.com/rs/zerolog"
)

// AdvisorService orchestrates an advisor query: resolve the student's setup,
// assemble the prompt, call the LLM (or the offline planner), then run any
// suggested schedule through the calendar core.
type AdvisorService struct {
	client            advisor.Client // nil when no API key is configured
	fallback          advisor.Fallback
	knowledgeService  *KnowledgeService
	preferenceService *PreferenceService
	scheduleService   *ScheduleService
	log               zerolog.Logger
}

// NewAdvisorService creates a new AdvisorService. client may be nil, in
// which case every query is answered by the offline planner.
func NewAdvisorService(
	client advisor.Client,
	knowledgeService *KnowledgeService,
	preferenceService *PreferenceService,
	scheduleService *ScheduleService,
	log zerolog.Logger,
) *AdvisorService {
	return &AdvisorService{
		client:            client,
		knowledgeService:  knowledgeService,
		preferenceService: preferenceService,
		scheduleService:   scheduleService,
		log:               log.With().Str("component", "advisor_service").Logger(),
	}
}

// Remote reports whether a remote LLM endpoint is configured.
func (s *AdvisorService) Remote() bool {
	return s.client != nil
}

// Query answers one advisor question for a student. The advisor itself can
// never hard-fail: remote errors degrade to the offline planner, and a
// malformed suggested schedule degrades to fewer (or no) calendar entries.
func (s *AdvisorService) Query(ctx context.Context, studentID int, req *model.QueryRequest) *model.QueryResponse {
	profile := s.resolveProfile(ctx, studentID, req)
	result := s.generate(ctx, profile, req)

	resp := &model.QueryResponse{
		Message:  result.Message,
		Schedule: result.Schedule,
		Debug:    result.Debug,
	}

	if len(result.Schedule) > 0 {
		layout := s.scheduleService.LayoutWeek(result.Schedule)
		resp.Grid = &layout.Grid
		resp.SlotLabels = layout.SlotLabels
		resp.AnyConflict = layout.AnyConflict
		resp.Dropped = layout.Dropped
		s.scheduleService.CacheSuggested(ctx, studentID, result.Schedule)
	}

	return resp
}

// resolveProfile prefers the inline setup the UI may send, then the stored
// profile. A student with neither gets unfiltered suggestions.
func (s *AdvisorService) resolveProfile(ctx context.Context, studentID int, req *model.QueryRequest) *model.PreferenceProfile {
	if req.Setup != nil {
		return req.Setup
	}

	profile, err := s.preferenceService.GetByStudentID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferencesNotFound) {
			s.log.Warn().Err(err).Int("student_id", studentID).Msg("preference lookup failed")
		}
		return nil
	}
	return profile
}

func (s *AdvisorService) generate(ctx context.Context, profile *model.PreferenceProfile, req *model.QueryRequest) advisor.Result {
	kp := s.knowledgeService.Payload(ctx)

	if s.client == nil {
		return s.fallback.Plan(profile, s.knowledgeService.Sections(), s.knowledgeService.Professors(), "")
	}

	setupJSON := "{}"
	if profile != nil {
		if encoded, err := json.Marshal(profile); err == nil {
			setupJSON = string(encoded)
		}
	}

	history := make([]advisor.Message, len(req.History))
	for i, turn := range req.History {
		history[i] = advisor.Message{Role: turn.Role, Content: turn.Content}
	}

	messages := advisor.BuildPrompt(setupJSON, kp, history, req.Message)

	text, err := s.client.Chat(ctx, messages)
	if err != nil {
		s.log.Error().Err(err).Msg("remote advisor failed; using offline planner")
		return s.fallback.Plan(profile, s.knowledgeService.Sections(), s.knowledgeService.Professors(), "remote advisor error")
	}

	result := advisor.ParseReply(text)
	if result.Debug == nil {
		result.Debug = map[string]any{"provider": "remote"}
	}
	return result
}
