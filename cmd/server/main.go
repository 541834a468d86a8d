package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ashithhgowda/treasure/internal/config"
	"github.com/ashithhgowda/treasure/internal/hunt"
	"github.com/ashithhgowda/treasure/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Storage ---
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	svc, err := hunt.NewService(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("opening game data: %w", err)
	}
	logger.Info("game data opened", "dir", cfg.DataDir)

	// --- Hunt definition ---
	seed := hunt.DemoHunt()
	if cfg.HuntFile != "" {
		seed, err = hunt.LoadHuntFile(cfg.HuntFile)
		if err != nil {
			return fmt.Errorf("loading hunt file: %w", err)
		}
	}
	if err := svc.EnsureClues(ctx, seed); err != nil {
		return fmt.Errorf("seeding clues: %w", err)
	}

	// --- HTTP Server ---
	srv, err := server.New(server.Options{
		Addr:          cfg.HTTPAddr,
		JWTSecret:     []byte(cfg.JWTSecret),
		AdminPassword: cfg.AdminPassword,
		DataDir:       cfg.DataDir,
		SPADir:        cfg.SPADir,
	}, logger, svc)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
