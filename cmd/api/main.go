// Package main is the entry point for the circle search API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/config"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/graph"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/handler"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/middleware"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/repo"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Source -----------------------------------------------------------
	// The file is reopened per request; a missing file at startup is only
	// worth a warning because it may be dropped in later.
	if _, err := os.Stat(cfg.SourcePath); err != nil {
		slog.Warn("booth source not readable yet", "path", cfg.SourcePath, "error", err)
	}
	booths := service.NewBoothService(repo.NewBoothRepo(cfg.SourcePath))

	photos := graph.NewClient(graph.Config{
		BaseURL:           cfg.GraphBaseURL,
		Version:           cfg.GraphVersion,
		RequestsPerSecond: cfg.GraphRateLimit,
		HTTPClient:        &http.Client{Timeout: 15 * time.Second},
	})

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Metrics → Recoverer → CORS.
	metrics := middleware.NewMetrics()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(metrics.Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))

	r.Handle("/metrics", metrics.Exposition())
	r.Mount("/", handler.NewServer(booths, photos, logger).Handler())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "source", cfg.SourcePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
