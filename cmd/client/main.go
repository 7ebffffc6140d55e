package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/globalstreet/postrack/internal/client/api"
	"github.com/globalstreet/postrack/internal/client/auth"
	"github.com/globalstreet/postrack/internal/client/cli"
	"github.com/globalstreet/postrack/internal/client/iocli"
	"github.com/globalstreet/postrack/internal/client/ops"
	"github.com/globalstreet/postrack/internal/client/storage/boltdb"
	"github.com/globalstreet/postrack/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "postrack-client.db", "Path to local database")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	io := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(io, nil, nil, nil, nil).PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Ctrl-C cancels long-running commands (watch, sync).
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := boltdb.New(*dbPath, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, store, logger)
	syncService := sync.NewService(apiClient, store, store, logger)
	opsService := ops.NewService(syncService, apiClient, logger)

	app := cli.New(io, authService, syncService, opsService, logger)
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Postrack Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
