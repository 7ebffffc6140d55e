package storage

import (
	"context"
	"time"

	"github.com/globalstreet/postrack/internal/models"
)

// AccountStorage defines the interface for login account persistence
type AccountStorage interface {
	// CreateAccount creates a new account in the storage
	// Returns ErrAccountAlreadyExists if the username is taken
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccountByUsername retrieves an account by username
	// Returns ErrAccountNotFound if the account doesn't exist
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)

	// GetAccountByID retrieves an account by ID
	// Returns ErrAccountNotFound if the account doesn't exist
	GetAccountByID(ctx context.Context, accountID string) (*models.Account, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, accountID string, lastLogin time.Time) error
}
