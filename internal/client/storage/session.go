package storage

import "context"

// Session holds the logged-in operator's identity and access token for the
// row store API.
type Session struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
}

// SessionStore persists the current login session between CLI invocations.
type SessionStore interface {
	// SaveSession stores the session, replacing any existing one.
	SaveSession(ctx context.Context, s *Session) error

	// GetSession returns the stored session.
	// Returns ErrSessionNotFound if nobody is logged in.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout).
	DeleteSession(ctx context.Context) error
}
