package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_CapturesStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rows", nil)
	w := httptest.NewRecorder()
	LoggingMiddleware(logger)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)

	logged := buf.String()
	assert.Contains(t, logged, "status=418")
	assert.Contains(t, logged, "path=/api/v1/rows")
	assert.Contains(t, logged, "bytes_written=15")
	// 4xx request logs at warn
	assert.Contains(t, logged, "level=WARN")
}

func TestLoggingMiddleware_DefaultStatusOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	LoggingMiddleware(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "status=200")
}

func TestLoggingWithSkip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := LoggingWithSkip(logger, []string{"/api/v1/health"})(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	mw.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, buf.String(), "health checks are not logged")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/rows", nil)
	mw.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), "path=/api/v1/rows")
}
