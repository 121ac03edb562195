package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"listings/internal/api"
	"listings/internal/config"
	"listings/internal/engine"
	"listings/internal/logging"
)

// run serves until ctx is cancelled or the data file fails to load. A load
// failure shuts the server down and is returned; static data makes retrying pointless.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	// 1. Routes go live immediately; they answer 503 until the store is set
	h := api.NewHandler(nil)
	e := api.NewServer(h, logger)

	// 2. Load the data file in the background
	go func() {
		store, err := engine.LoadFile(cfg.DataPath, logger)
		if err != nil {
			logger.Error("Failed to load listings", zap.Error(err))
			cancel(err)
			return
		}
		h.SetStore(store)
	}()

	// 3. Serve until interrupted
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server ready", zap.String("addr", cfg.Addr))
		serveErr <- e.Start(cfg.Addr)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server stopped", zap.Error(err))
	}

	if cause := context.Cause(ctx); !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
