package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"courierdesk/cmd"
	"courierdesk/internal/adapters/in/cli"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(config.Env)

	root, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	app, err := root.CreateApp(os.Stdout, os.Stderr)
	if err != nil {
		_ = root.Close()
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := app.Run(ctx, os.Args[1:])
	stop()

	if err = root.Close(); err != nil {
		logger.Error("failed to close storage", "error", err)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(exitCode(runErr))
	}
}

// newLogger writes to stderr so command output on stdout stays clean.
func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
}

func exitCode(err error) int {
	if errors.Is(err, cli.ErrUsage) {
		return 2
	}
	return 1
}
