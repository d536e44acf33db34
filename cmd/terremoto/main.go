package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dereckcolon1-cell/terremoto-app/internal/adapter/httpserver"
	"github.com/dereckcolon1-cell/terremoto-app/internal/adapter/usgs"
	"github.com/dereckcolon1-cell/terremoto-app/internal/config"
	"github.com/dereckcolon1-cell/terremoto-app/internal/dashboard"
	"github.com/dereckcolon1-cell/terremoto-app/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := usgs.NewClient(cfg.FeedBaseURL, cfg.FeedTimeout, metrics, logger)
	feed := usgs.NewCachedFeed(client, cfg.FeedCacheTTL, metrics)
	logger.Info("usgs feed configured", "base_url", cfg.FeedBaseURL, "cache_ttl", cfg.FeedCacheTTL)

	svc := dashboard.NewService(feed, metrics, logger)
	srv := httpserver.NewServer(cfg.HTTPAddr, svc, svc, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
