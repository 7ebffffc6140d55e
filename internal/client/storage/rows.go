package storage

import (
	"context"
	"time"

	"github.com/globalstreet/postrack/internal/models"
)

//go:generate moq -out rows_mock.go . RowCache

// RowCache is the local durable mirror of the remote row store. It holds at
// most one row per key; a put with an existing key replaces the prior row
// wholesale, no timestamp comparison happens at this layer (the server is
// trusted to send the current version).
//
// Durability failures never surface as errors here: implementations log and
// degrade to in-memory-only, because losing the cache must not crash the
// application, it only forces a full resync.
type RowCache interface {
	// Load populates the cache from durable storage. Idempotent: only the
	// first call reads the disk, subsequent calls are no-ops.
	Load(ctx context.Context) error

	// Get returns the cached row for key.
	// Returns ErrRowNotFound if no row exists.
	Get(ctx context.Context, key string) (models.Row, error)

	// Put stores one row, replacing any existing row with the same key,
	// and mirrors it to durable storage.
	Put(ctx context.Context, row models.Row) error

	// Merge applies a batch of rows in the given order. Rows sharing a key
	// resolve to the last one in the batch.
	Merge(ctx context.Context, rows []models.Row) error

	// All returns every cached row in unspecified order.
	All(ctx context.Context) ([]models.Row, error)

	// LatestTimestamp returns the maximum updated_at across all rows.
	// The zero time means the cache is empty and a full fetch is needed.
	LatestTimestamp(ctx context.Context) (time.Time, error)

	// Count returns the number of cached rows.
	Count(ctx context.Context) (int, error)
}
