package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/globalstreet/postrack/internal/server/handlers"
	"github.com/globalstreet/postrack/internal/server/middleware"
	"github.com/globalstreet/postrack/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultAddr   = ":8080"
	defaultDBPath = "postrack.db"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour

	// Expired refresh tokens are purged on this cadence
	tokenCleanupInterval = time.Hour
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", defaultAddr, "Listen address")
	dbPath := flag.String("db", defaultDBPath, "Path to the SQLite database file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *addr, *dbPath); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string) error {
	secret := os.Getenv("POSTRACK_JWT_SECRET")
	if secret == "" {
		return errors.New("POSTRACK_JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTokenTTL,
		RefreshTokenTTL: refreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	rowsHandler := handlers.NewRowsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMW := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("/api/v1/rows", authMW(http.HandlerFunc(rowsHandler.HandleRows)))
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Login and register stay tight; sync traffic polls every 20 seconds per
	// client so the default pool is far more generous.
	rateLimit := middleware.RateLimitByPathMiddleware(
		[]middleware.PathRateLimit{
			{Path: "/api/v1/auth/login", Rate: 10, Window: time.Minute},
			{Path: "/api/v1/auth/register", Rate: 5, Window: time.Minute},
		},
		600, time.Minute, logger,
	)

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
			rateLimit(mux)))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go cleanupExpiredTokens(ctx, logger, store)

	errC := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// cleanupExpiredTokens periodically purges expired refresh tokens
func cleanupExpiredTokens(ctx context.Context, logger *slog.Logger, store *sqlite.Storage) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := store.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Error("failed to delete expired tokens", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("expired tokens purged", "count", deleted)
			}
		}
	}
}

func printVersion() {
	fmt.Printf("postrack server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
