package boltdb

import (
	"fmt"
	"log/slog"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/globalstreet/postrack/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketRows    = []byte("rows")
	bucketPending = []byte("pending")
	bucketSession = []byte("session")
)

// Storage is the BoltDB-backed client store: the raw row cache, the pending
// write queue and the login session. Rows and pending writes are held in
// memory and mirrored to disk on every mutation; if the database cannot be
// opened or written the store keeps working in memory only, so a broken disk
// costs a full resync, never a crash.
type Storage struct {
	db     *bbolt.DB // nil when running memory-only
	logger *slog.Logger

	mu         sync.RWMutex
	rows       map[string]rowRecord
	pending    map[string]storage.PendingWrite
	memSession *storage.Session // session fallback when db is nil
	loaded     bool
}

// New opens the client store at dbPath. An open failure is logged and the
// store degrades to memory-only instead of failing.
func New(dbPath string, logger *slog.Logger) *Storage {
	s := &Storage{
		logger:  logger,
		rows:    make(map[string]rowRecord),
		pending: make(map[string]storage.PendingWrite),
	}

	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		logger.Error("failed to open client database, running memory-only",
			"path", dbPath, "error", err)
		return s
	}

	if err := initBuckets(db); err != nil {
		logger.Error("failed to initialize buckets, running memory-only",
			"path", dbPath, "error", err)
		_ = db.Close()
		return s
	}

	s.db = db
	return s
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they do not exist.
func initBuckets(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRows, bucketPending, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}
