package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/globalstreet/postrack/internal/client/storage"
)

// Enqueue records a failed write. Coalesces by key: the new payload replaces
// any pending entry for the same key, so only the last intended value for an
// entity is retried.
func (s *Storage) Enqueue(ctx context.Context, key string, data json.RawMessage) error {
	pw := storage.PendingWrite{
		Key:        key,
		Data:       data,
		EnqueuedAt: time.Now(),
	}

	s.mu.Lock()
	s.loadLocked()
	s.pending[key] = pw
	s.mu.Unlock()

	s.persistPending(key, &pw)
	return nil
}

// List returns all pending entries, oldest first.
func (s *Storage) List(ctx context.Context) ([]storage.PendingWrite, error) {
	s.mu.Lock()
	s.loadLocked()
	entries := make([]storage.PendingWrite, 0, len(s.pending))
	for _, pw := range s.pending {
		entries = append(entries, pw)
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EnqueuedAt.Equal(entries[j].EnqueuedAt) {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].EnqueuedAt.Before(entries[j].EnqueuedAt)
	})
	return entries, nil
}

// Remove drops the entry for key after a successful retry.
func (s *Storage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	s.loadLocked()
	delete(s.pending, key)
	s.mu.Unlock()

	s.persistPending(key, nil)
	return nil
}

// Fail bumps the attempt counter for key and drops the entry as poison once
// attempts reach maxAttempts.
func (s *Storage) Fail(ctx context.Context, key string, maxAttempts int) (bool, error) {
	s.mu.Lock()
	s.loadLocked()
	pw, ok := s.pending[key]
	if !ok {
		s.mu.Unlock()
		return false, nil
	}

	pw.Attempts++
	if pw.Attempts >= maxAttempts {
		delete(s.pending, key)
		s.mu.Unlock()
		s.persistPending(key, nil)
		return true, nil
	}

	s.pending[key] = pw
	s.mu.Unlock()
	s.persistPending(key, &pw)
	return false, nil
}

// Len returns the number of pending entries.
func (s *Storage) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	s.loadLocked()
	defer s.mu.Unlock()
	return len(s.pending), nil
}

// persistPending mirrors one pending entry to disk; pw == nil deletes it.
// Disk failures are logged and swallowed.
func (s *Storage) persistPending(key string, pw *storage.PendingWrite) {
	if s.db == nil {
		return
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketPending)
		if err != nil {
			return fmt.Errorf("failed to create pending bucket: %w", err)
		}
		if pw == nil {
			return bucket.Delete([]byte(key))
		}
		data, err := json.Marshal(pw)
		if err != nil {
			return fmt.Errorf("failed to marshal pending write: %w", err)
		}
		return bucket.Put([]byte(key), data)
	})
	if err != nil {
		s.logger.Error("failed to persist pending queue", "key", key, "error", err)
	}
}
