package worker

import (
	"context"
	"time"

	"github.com/mavpath/advisor-backend/internal/knowledge"
	"github.com/mavpath/advisor-backend/internal/service"
	"github.com/rs/zerolog"
)

// KnowledgeWorker periodically reloads the advising fixtures from disk and
// refreshes the compacted prompt payload in Redis. Fixtures change when the
// registrar drops a new export into the data directory; the service picks it
// up without a restart.
type KnowledgeWorker struct {
	store    *knowledge.Store
	service  *service.KnowledgeService
	interval time.Duration
	log      zerolog.Logger
}

// NewKnowledgeWorker creates a new KnowledgeWorker.
func NewKnowledgeWorker(store *knowledge.Store, svc *service.KnowledgeService, interval time.Duration, log zerolog.Logger) *KnowledgeWorker {
	return &KnowledgeWorker{
		store:    store,
		service:  svc,
		interval: interval,
		log:      log.With().Str("component", "knowledge_worker").Logger(),
	}
}

// Start begins the refresh loop. Call in a goroutine.
func (w *KnowledgeWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *KnowledgeWorker) refresh(ctx context.Context) {
	if err := w.store.Load(); err != nil {
		w.log.Error().Err(err).Msg("Fixture reload failed; keeping previous data")
		return
	}
	w.service.RefreshCache(ctx)
}
