package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/globalstreet/postrack/internal/client/storage"
)

var sessionKey = []byte("current")

// SaveSession stores the login session, replacing any existing one.
func (s *Storage) SaveSession(ctx context.Context, sess *storage.Session) error {
	if s.db == nil {
		s.mu.Lock()
		s.memSession = sess
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}
		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
}

// GetSession returns the stored session.
func (s *Storage) GetSession(ctx context.Context) (*storage.Session, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.memSession == nil {
			return nil, storage.ErrSessionNotFound
		}
		return s.memSession, nil
	}

	var sess *storage.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return storage.ErrSessionNotFound
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		sess = &storage.Session{}
		if err := json.Unmarshal(data, sess); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteSession removes the stored session.
func (s *Storage) DeleteSession(ctx context.Context) error {
	if s.db == nil {
		s.mu.Lock()
		s.memSession = nil
		s.mu.Unlock()
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(sessionKey)
	})
}
