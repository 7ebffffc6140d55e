package storage

import (
	"context"

	"github.com/globalstreet/postrack/internal/models"
)

// TokenStorage defines the interface for refresh token persistence
type TokenStorage interface {
	// SaveRefreshToken stores a new refresh token
	// A token with the same value is replaced
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves a refresh token by its value
	// Returns ErrTokenNotFound if the token doesn't exist
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)

	// DeleteRefreshToken deletes a refresh token by its value
	// Returns ErrTokenNotFound if the token doesn't exist
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteAccountTokens deletes all refresh tokens of an account
	// Returns the number of deleted tokens
	DeleteAccountTokens(ctx context.Context, accountID string) (int, error)

	// DeleteExpiredTokens removes all expired tokens
	// Returns the number of deleted tokens
	DeleteExpiredTokens(ctx context.Context) (int, error)
}
