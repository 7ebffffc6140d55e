package storage

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate moq -out pending_mock.go . PendingQueue

// PendingWrite is one write that failed to reach the remote store and is
// waiting for a retry.
type PendingWrite struct {
	EnqueuedAt time.Time       `json:"enqueued_at"`
	Key        string          `json:"key"`
	Data       json.RawMessage `json:"data"`
	Attempts   int             `json:"attempts"` // failed retry cycles so far
}

// PendingQueue persists writes that failed to reach the remote store.
// The queue coalesces by key: enqueueing a key that is already pending
// replaces the old entry, so only the most recent intended value for an
// entity is ever retried. Entries persist across process restarts.
type PendingQueue interface {
	// Enqueue records a failed write, replacing any pending entry with the
	// same key.
	Enqueue(ctx context.Context, key string, data json.RawMessage) error

	// List returns all pending entries ordered by enqueue time.
	List(ctx context.Context) ([]PendingWrite, error)

	// Remove drops the entry for key after a successful retry.
	Remove(ctx context.Context, key string) error

	// Fail bumps the attempt counter for key. When attempts reach maxAttempts
	// the entry is dropped as poison and dropped=true is returned.
	Fail(ctx context.Context, key string, maxAttempts int) (dropped bool, err error)

	// Len returns the number of pending entries.
	Len(ctx context.Context) (int, error)
}
