// Package sync implements the offline-tolerant replication client: optimistic
// writes with a durable retry queue, and delta fetches merged into the local
// row cache.
package sync

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	httpapi "github.com/globalstreet/postrack/internal/client/api"
	"github.com/globalstreet/postrack/internal/client/state"
	"github.com/globalstreet/postrack/internal/client/storage"
	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/pkg/api"
)

const (
	// DefaultMaxAttempts caps retries of one pending write before it is
	// dropped as poison.
	DefaultMaxAttempts = 10
)

// Service coordinates the local durable cache, the pending write queue and
// the remote row store. One instance exists per process and is passed to all
// callers; downstream consumers never touch the cache or the queue directly.
//
// Only a boolean online/offline signal crosses this boundary: write failures
// feed the queue, fetch failures fall back to cached state.
type Service struct {
	api    httpapi.ClientAPI
	cache  storage.RowCache
	queue  storage.PendingQueue
	state  *state.Builder
	logger *slog.Logger

	maxAttempts int

	writing  atomic.Int64 // optimistic writes in flight, suppresses polls
	draining atomic.Bool  // prevents overlapping queue drains
	online   atomic.Bool
}

// NewService creates the sync service.
func NewService(apiClient httpapi.ClientAPI, cache storage.RowCache, queue storage.PendingQueue, logger *slog.Logger) *Service {
	return &Service{
		api:         apiClient,
		cache:       cache,
		queue:       queue,
		state:       state.NewBuilder(logger),
		logger:      logger,
		maxAttempts: DefaultMaxAttempts,
	}
}

// Online reports the result of the last remote interaction.
func (s *Service) Online() bool {
	return s.online.Load()
}

// Write stamps data with the current time, applies it to the local cache
// immediately (read-your-own-write holds even before the network round trip)
// and then attempts the remote upsert. On any failure the write is enqueued
// for retry and false is returned. The optimistic local state is never rolled
// back; once written locally, a value stays visible until superseded by a
// later local write or a later remote fetch.
func (s *Service) Write(ctx context.Context, accessToken, key string, data any) bool {
	payload, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("refusing write with unmarshalable payload", "key", key, "error", err)
		return false
	}

	now := time.Now().UTC()
	row := models.Row{Key: key, Data: payload, UpdatedAt: now}

	if err := s.cache.Load(ctx); err != nil {
		s.logger.Warn("cache load failed", "error", err)
	}
	if err := s.cache.Put(ctx, row); err != nil {
		s.logger.Warn("optimistic cache write failed", "key", key, "error", err)
	}

	s.writing.Add(1)
	defer s.writing.Add(-1)

	err = s.api.UpsertRow(ctx, accessToken, api.Row{Key: key, Data: payload, UpdatedAt: now})
	if err != nil {
		s.logger.Warn("remote write failed, enqueueing for retry", "key", key, "error", err)
		s.online.Store(false)
		if qerr := s.queue.Enqueue(ctx, key, payload); qerr != nil {
			s.logger.Error("failed to enqueue pending write", "key", key, "error", qerr)
		}
		return false
	}

	s.online.Store(true)
	return true
}

// Fetch merges the remote delta into the local cache and reconstructs the
// application state. With forceFull (or an empty cache) the timestamp filter
// is bypassed and every row is fetched. On network failure the fetch is
// skipped and the state is rebuilt from whatever is already cached,
// stale but available. The returned flag is the online signal.
func (s *Service) Fetch(ctx context.Context, accessToken string, forceFull bool) (*models.AppState, bool) {
	if err := s.cache.Load(ctx); err != nil {
		s.logger.Warn("cache load failed", "error", err)
	}

	var since *time.Time
	if !forceFull {
		latest, err := s.cache.LatestTimestamp(ctx)
		if err != nil {
			s.logger.Warn("failed to read latest cached timestamp", "error", err)
		} else if !latest.IsZero() {
			since = &latest
		}
	}

	rows, err := s.api.QueryRows(ctx, accessToken, since)
	if err != nil {
		s.logger.Warn("fetch failed, serving cached state", "error", err)
		s.online.Store(false)
		return s.buildState(ctx), false
	}
	s.online.Store(true)

	if len(rows) > 0 {
		// Server returns rows ascending by updated_at; merge preserves that
		// order so a duplicated key resolves to the newest row.
		merged := make([]models.Row, 0, len(rows))
		for _, r := range rows {
			merged = append(merged, models.Row{Key: r.Key, Data: r.Data, UpdatedAt: r.UpdatedAt})
		}
		if err := s.cache.Merge(ctx, merged); err != nil {
			s.logger.Warn("cache merge failed", "rows", len(merged), "error", err)
		}
		s.logger.Info("merged remote rows", "count", len(merged), "full", forceFull || since == nil)
	}

	return s.buildState(ctx), true
}

// DrainResult summarizes one pass over the pending write queue.
type DrainResult struct {
	Attempted int
	Sent      int
	Remaining int
	Dropped   int // poison entries removed after too many attempts
}

// Drain retries every pending write once. Entries that reach the server are
// removed; the rest stay queued with a bumped attempt count and are dropped
// once the count reaches the cap. Overlapping drains are collapsed into one.
func (s *Service) Drain(ctx context.Context, accessToken string) DrainResult {
	if !s.draining.CompareAndSwap(false, true) {
		return DrainResult{}
	}
	defer s.draining.Store(false)

	var res DrainResult

	entries, err := s.queue.List(ctx)
	if err != nil {
		s.logger.Error("failed to list pending writes", "error", err)
		return res
	}
	res.Attempted = len(entries)
	if len(entries) == 0 {
		return res
	}

	for _, pw := range entries {
		row := api.Row{Key: pw.Key, Data: pw.Data, UpdatedAt: pw.EnqueuedAt.UTC()}
		if err := s.api.UpsertRow(ctx, accessToken, row); err != nil {
			dropped, ferr := s.queue.Fail(ctx, pw.Key, s.maxAttempts)
			if ferr != nil {
				s.logger.Error("failed to record retry failure", "key", pw.Key, "error", ferr)
			}
			if dropped {
				res.Dropped++
				s.logger.Warn("dropping poison pending write",
					"key", pw.Key, "attempts", pw.Attempts+1)
			}
			continue
		}
		if err := s.queue.Remove(ctx, pw.Key); err != nil {
			s.logger.Error("failed to remove sent pending write", "key", pw.Key, "error", err)
		}
		res.Sent++
	}

	remaining, err := s.queue.Len(ctx)
	if err == nil {
		res.Remaining = remaining
	}

	if res.Sent > 0 || res.Dropped > 0 {
		s.logger.Info("pending queue drained",
			"attempted", res.Attempted, "sent", res.Sent,
			"remaining", res.Remaining, "dropped", res.Dropped)
	}
	return res
}

// PendingCount returns the number of writes waiting for retry.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	return s.queue.Len(ctx)
}

func (s *Service) buildState(ctx context.Context) *models.AppState {
	rows, err := s.cache.All(ctx)
	if err != nil {
		s.logger.Error("failed to read cache, returning empty state", "error", err)
		rows = nil
	}
	return s.state.Build(rows)
}
