package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalstreet/postrack/internal/server/handlers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := handlers.GenerateAccessToken(cfg, "a1", "collector1", "user")
	require.NoError(t, err)

	var gotUserID, gotUsername, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = handlers.GetUserID(r.Context())
		gotUsername, _ = handlers.GetUsername(r.Context())
		gotRole, _ = handlers.GetRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rows", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(testLogger(), cfg)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a1", gotUserID)
	assert.Equal(t, "collector1", gotUsername)
	assert.Equal(t, "user", gotRole)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rows", nil)
	w := httptest.NewRecorder()

	AuthMiddleware(testLogger(), testJWTConfig())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rows", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()

	AuthMiddleware(testLogger(), testJWTConfig())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	otherCfg := testJWTConfig()
	otherCfg.Secret = []byte("other-secret")
	token, _, err := handlers.GenerateAccessToken(otherCfg, "a1", "collector1", "user")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rows", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(testLogger(), testJWTConfig())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
