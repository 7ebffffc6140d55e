package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpapi "github.com/globalstreet/postrack/internal/client/api"
	"github.com/globalstreet/postrack/internal/client/storage"
	"github.com/globalstreet/postrack/internal/validation"
	pkgapi "github.com/globalstreet/postrack/pkg/api"
)

var (
	// ErrNotAuthenticated indicates that no login session is stored.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired indicates that the stored session could not be
	// refreshed and a new login is required.
	ErrSessionExpired = errors.New("session expired")
)

// refreshLeeway is how long before access token expiry a refresh is
// attempted, so an almost-expired token is never handed to a caller.
const refreshLeeway = 30 * time.Second

// Service handles login, logout and session persistence for the row store
// API. The session (including the refresh token) is kept in the local
// database so CLI invocations stay logged in between runs.
type Service struct {
	apiClient httpapi.ClientAPI
	sessions  storage.SessionStore
	logger    *slog.Logger

	now func() time.Time
}

func NewService(apiClient httpapi.ClientAPI, sessions storage.SessionStore, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates a new server account. It does not log the account in.
func (s *Service) Register(ctx context.Context, username, password string, role string) (*pkgapi.RegisterResponse, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateRole(role); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return resp, nil
}

// Login authenticates against the server and persists the session.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	sess, err := s.sessionFromTokens(resp)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// Refresh exchanges the stored refresh token for a new pair and persists
// the rotated session. The old refresh token is invalid afterwards.
func (s *Service) Refresh(ctx context.Context) (*storage.Session, error) {
	sess, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.RefreshToken == "" {
		return nil, ErrSessionExpired
	}

	resp, err := s.apiClient.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	rotated, err := s.sessionFromTokens(resp)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(ctx, rotated); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return rotated, nil
}

// ActiveSession returns the stored session, refreshing the token pair first
// when the access token is expired or about to expire.
func (s *Service) ActiveSession(ctx context.Context) (*storage.Session, error) {
	sess, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	expiresAt := time.Unix(sess.ExpiresAt, 0)
	if s.now().Before(expiresAt.Add(-refreshLeeway)) {
		return sess, nil
	}

	s.logger.Debug("access token expiring, refreshing", "username", sess.Username)
	return s.Refresh(ctx)
}

// IsAuthenticated reports whether a session is stored, expired or not.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Logout revokes the account's refresh tokens on the server (best effort)
// and always deletes the local session.
func (s *Service) Logout(ctx context.Context) error {
	sess, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if err := s.apiClient.Logout(ctx, sess.AccessToken); err != nil {
		s.logger.Warn("server logout failed, dropping local session anyway", "error", err)
	}

	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// accessClaims mirrors the claim set the server puts in access tokens.
type accessClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// sessionFromTokens builds a session from a token pair. Identity comes from
// the access token claims; the signature is the server's business, the
// client only reads them.
func (s *Service) sessionFromTokens(resp *pkgapi.TokenResponse) (*storage.Session, error) {
	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}

	return &storage.Session{
		Username:     claims.Username,
		UserID:       claims.UserID,
		Role:         claims.Role,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.now().Unix() + resp.ExpiresIn,
	}, nil
}
