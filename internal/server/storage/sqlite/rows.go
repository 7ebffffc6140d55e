package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/internal/server/storage"
)

// Timestamps are stored as unix nanoseconds so the delta comparison is a
// plain integer match against the index on updated_at.

// UpsertRow inserts the row or replaces the row with the same key
func (s *Storage) UpsertRow(ctx context.Context, row *models.Row) error {
	query := `
		INSERT INTO rows (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		row.Key,
		[]byte(row.Data),
		row.UpdatedAt.UnixNano(),
	)

	if err != nil {
		return fmt.Errorf("failed to upsert row: %w", err)
	}

	return nil
}

// GetRow retrieves a single row by key
func (s *Storage) GetRow(ctx context.Context, key string) (*models.Row, error) {
	query := `
		SELECT key, data, updated_at
		FROM rows
		WHERE key = ?
	`

	row := &models.Row{}
	var updatedAt int64

	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&row.Key,
		(*[]byte)(&row.Data),
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRowNotFound
		}
		return nil, fmt.Errorf("failed to get row: %w", err)
	}

	row.UpdatedAt = time.Unix(0, updatedAt)
	return row, nil
}

// GetRows retrieves every row ordered ascending by updated_at
func (s *Storage) GetRows(ctx context.Context) ([]models.Row, error) {
	query := `
		SELECT key, data, updated_at
		FROM rows
		ORDER BY updated_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return s.scanRows(rows)
}

// GetRowsSince retrieves rows changed strictly after the given instant,
// ordered ascending by updated_at
func (s *Storage) GetRowsSince(ctx context.Context, since time.Time) ([]models.Row, error) {
	query := `
		SELECT key, data, updated_at
		FROM rows
		WHERE updated_at > ?
		ORDER BY updated_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, since.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to query rows since timestamp: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return s.scanRows(rows)
}

// CountRows returns the number of stored rows
func (s *Storage) CountRows(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rows`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return count, nil
}

// scanRows is a helper to scan multiple rows from a result set
func (s *Storage) scanRows(rows *sql.Rows) ([]models.Row, error) {
	result := []models.Row{}

	for rows.Next() {
		var row models.Row
		var updatedAt int64

		if err := rows.Scan(&row.Key, (*[]byte)(&row.Data), &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row.UpdatedAt = time.Unix(0, updatedAt)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
