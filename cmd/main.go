package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bankledger/config"
	"bankledger/internal/cli"
	"bankledger/internal/core"
	"bankledger/internal/http"
	"bankledger/internal/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// Session output goes to stdout, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting application", "mode", cfg.Mode)

	dbClient, err := sqlite.NewClient(cfg.Database)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create db client", "error", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err = dbClient.Migrate(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to migrate journal", "error", err)
		os.Exit(1)
	}

	journal := sqlite.NewJournalStore(dbClient.DB())
	service := core.NewService(core.NewBank(cfg.BankName), journal, logger, cfg.Ledger.Policy())

	switch cfg.Mode {
	case config.ModeHTTP:
		err = serveHTTP(ctx, service, logger, cfg.HTTP)
	default:
		err = runCLI(ctx, service)
	}

	if err != nil && ctx.Err() == nil {
		logger.ErrorContext(ctx, "application stopped with error", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Application shutdown complete")
}

// runCLI returns as soon as ctx is cancelled, even while the session is
// blocked reading stdin.
func runCLI(ctx context.Context, service *core.Service) error {
	done := make(chan error, 1)
	go func() {
		done <- cli.NewSession(service, os.Stdin, os.Stdout).Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func serveHTTP(ctx context.Context, service *core.Service, logger *slog.Logger, cfg http.Config) error {
	httpServer := http.NewServer(service, logger, cfg)

	if err := httpServer.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	logger.InfoContext(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return httpServer.Stop(shutdownCtx)
}
