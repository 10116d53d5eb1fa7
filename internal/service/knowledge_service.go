package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mavpath/advisor-backend/internal/config"
	"github.com/mavpath/advisor-backend/internal/knowledge"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// KnowledgeService serves the advising fixtures, keeping the compacted
// prompt payload cached in Redis so query handling does not re-serialize
// the fixtures on every request.
type KnowledgeService struct {
	store *knowledge.Store
	cfg   *config.Config
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewKnowledgeService creates a new KnowledgeService.
func NewKnowledgeService(store *knowledge.Store, cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *KnowledgeService {
	return &KnowledgeService{
		store: store,
		cfg:   cfg,
		rdb:   rdb,
		log:   log.With().Str("component", "knowledge_service").Logger(),
	}
}

// Payload returns the compacted prompt payload, preferring the Redis cache.
// A cache miss or decode failure falls through to the in-memory store.
func (s *KnowledgeService) Payload(ctx context.Context) knowledge.Payload {
	key := config.CacheKey.KnowledgePayloadKey()

	cached, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var payload knowledge.Payload
		if jsonErr := json.Unmarshal(cached, &payload); jsonErr == nil {
			return payload
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("knowledge cache read failed")
	}

	payload := s.store.Payload(s.cfg.KnowledgeMaxChars)
	s.cachePayload(ctx, payload)
	return payload
}

// RefreshCache recomputes the compacted payload and writes it to Redis.
// Called by the refresh worker after reloading fixtures.
func (s *KnowledgeService) RefreshCache(ctx context.Context) {
	s.cachePayload(ctx, s.store.Payload(s.cfg.KnowledgeMaxChars))
}

// Counts reports fixture sizes for the health endpoint.
func (s *KnowledgeService) Counts() knowledge.Counts {
	return s.store.Counts()
}

// Sections exposes the loaded schedule options for the fallback planner.
func (s *KnowledgeService) Sections() []knowledge.Section {
	return s.store.Sections()
}

// Professors exposes the loaded professor ratings keyed by profId.
func (s *KnowledgeService) Professors() map[string]knowledge.Professor {
	return s.store.Professors()
}

func (s *KnowledgeService) cachePayload(ctx context.Context, payload knowledge.Payload) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return
	}
	// Expiry is double the refresh interval so a stalled worker degrades to
	// recomputing per request instead of serving stale data forever.
	if err := s.rdb.Set(ctx, config.CacheKey.KnowledgePayloadKey(), encoded, 2*s.cfg.KnowledgeRefresh).Err(); err != nil {
		s.log.Warn().Err(err).Msg("knowledge cache write failed")
	}
}
