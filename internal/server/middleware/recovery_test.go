package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rows", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		RecoveryMiddleware(logger)(next).ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The panic value is logged with a stack, not leaked to the client.
	assert.Contains(t, buf.String(), "boom")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRecoveryMiddleware_PassesThrough(t *testing.T) {
	logger := testLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rows", nil)
	w := httptest.NewRecorder()
	RecoveryMiddleware(logger)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
