package storage

import (
	"context"
	"time"

	"github.com/globalstreet/postrack/internal/models"
)

// RowStorage defines the interface for the replicated row store. The store
// holds one row per key; the dataset is shared by all authenticated accounts.
type RowStorage interface {
	// UpsertRow inserts the row or replaces the existing row with the same
	// key. The caller's updated_at timestamp is stored as-is.
	UpsertRow(ctx context.Context, row *models.Row) error

	// GetRow retrieves a single row by key
	// Returns ErrRowNotFound if no row exists under the key
	GetRow(ctx context.Context, key string) (*models.Row, error)

	// GetRows retrieves every row, ordered ascending by updated_at
	// Returns empty slice if the store is empty
	GetRows(ctx context.Context) ([]models.Row, error)

	// GetRowsSince retrieves rows with updated_at strictly after the given
	// instant, ordered ascending by updated_at. Used for delta sync.
	// Returns empty slice if nothing changed
	GetRowsSince(ctx context.Context, since time.Time) ([]models.Row, error)

	// CountRows returns the number of stored rows
	CountRows(ctx context.Context) (int, error)
}
