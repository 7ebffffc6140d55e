package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/globalstreet/postrack/internal/client/storage"
	"github.com/globalstreet/postrack/internal/models"
)

// rowRecord is the on-disk shape of one cached row, keyed by the row key.
type rowRecord struct {
	UpdatedAt time.Time       `json:"updated_at"`
	Data      json.RawMessage `json:"data"`
}

// Load populates the in-memory maps from disk exactly once per process
// lifetime. Corrupt records are logged and skipped; a read failure leaves the
// store empty, which only forces a full resync.
func (s *Storage) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return nil
}

func (s *Storage) loadLocked() {
	if s.loaded {
		return
	}
	s.loaded = true

	if s.db == nil {
		return
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		if bucket := tx.Bucket(bucketRows); bucket != nil {
			_ = bucket.ForEach(func(k, v []byte) error {
				var rec rowRecord
				if err := json.Unmarshal(v, &rec); err != nil {
					s.logger.Warn("skipping corrupt cached row", "key", string(k), "error", err)
					return nil
				}
				s.rows[string(k)] = rec
				return nil
			})
		}
		if bucket := tx.Bucket(bucketPending); bucket != nil {
			_ = bucket.ForEach(func(k, v []byte) error {
				var pw storage.PendingWrite
				if err := json.Unmarshal(v, &pw); err != nil {
					s.logger.Warn("skipping corrupt pending write", "key", string(k), "error", err)
					return nil
				}
				s.pending[string(k)] = pw
				return nil
			})
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to load client store, starting empty", "error", err)
		s.rows = make(map[string]rowRecord)
		s.pending = make(map[string]storage.PendingWrite)
	}
}

// Get returns the cached row for key.
func (s *Storage) Get(ctx context.Context, key string) (models.Row, error) {
	s.mu.Lock()
	s.loadLocked()
	rec, ok := s.rows[key]
	s.mu.Unlock()

	if !ok {
		return models.Row{}, storage.ErrRowNotFound
	}
	return models.Row{Key: key, Data: rec.Data, UpdatedAt: rec.UpdatedAt}, nil
}

// Put stores one row, replacing any existing row with the same key, and
// mirrors it to disk.
func (s *Storage) Put(ctx context.Context, row models.Row) error {
	s.mu.Lock()
	s.loadLocked()
	s.rows[row.Key] = rowRecord{Data: row.Data, UpdatedAt: row.UpdatedAt}
	s.mu.Unlock()

	s.persistRows([]models.Row{row})
	return nil
}

// Merge applies a batch of rows in order; a later row with the same key wins.
func (s *Storage) Merge(ctx context.Context, rows []models.Row) error {
	if len(rows) == 0 {
		return nil
	}

	s.mu.Lock()
	s.loadLocked()
	for _, row := range rows {
		s.rows[row.Key] = rowRecord{Data: row.Data, UpdatedAt: row.UpdatedAt}
	}
	s.mu.Unlock()

	s.persistRows(rows)
	return nil
}

// All returns every cached row.
func (s *Storage) All(ctx context.Context) ([]models.Row, error) {
	s.mu.Lock()
	s.loadLocked()
	rows := make([]models.Row, 0, len(s.rows))
	for key, rec := range s.rows {
		rows = append(rows, models.Row{Key: key, Data: rec.Data, UpdatedAt: rec.UpdatedAt})
	}
	s.mu.Unlock()

	return rows, nil
}

// LatestTimestamp returns the maximum updated_at across all cached rows, or
// the zero time when the cache is empty.
func (s *Storage) LatestTimestamp(ctx context.Context) (time.Time, error) {
	s.mu.Lock()
	s.loadLocked()
	defer s.mu.Unlock()

	var latest time.Time
	for _, rec := range s.rows {
		if rec.UpdatedAt.After(latest) {
			latest = rec.UpdatedAt
		}
	}
	return latest, nil
}

// Count returns the number of cached rows.
func (s *Storage) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	s.loadLocked()
	defer s.mu.Unlock()
	return len(s.rows), nil
}

// persistRows mirrors the given rows to the rows bucket. Disk failures are
// logged and swallowed; the in-memory state stays authoritative.
func (s *Storage) persistRows(rows []models.Row) {
	if s.db == nil {
		return
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketRows)
		if err != nil {
			return fmt.Errorf("failed to create rows bucket: %w", err)
		}
		for _, row := range rows {
			data, err := json.Marshal(rowRecord{Data: row.Data, UpdatedAt: row.UpdatedAt})
			if err != nil {
				return fmt.Errorf("failed to marshal row %s: %w", row.Key, err)
			}
			if err := bucket.Put([]byte(row.Key), data); err != nil {
				return fmt.Errorf("failed to save row %s: %w", row.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to persist row cache", "rows", len(rows), "error", err)
	}
}
