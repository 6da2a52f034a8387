package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"azushop-client/internal/config"
	"azushop-client/internal/demoserver"
	"azushop-client/internal/middleware"
	"azushop-client/internal/observability"
)

func main() {
	cfg := config.Load()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}
	observability.InitLogger(logLevel, logFormat)

	slog.Info("starting demo server")

	store, err := demoserver.NewStore()
	if err != nil {
		slog.Error("failed to seed demo catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tokens := demoserver.NewTokens(cfg.JWTSecret, cfg.SessionTTL)

	router := demoserver.NewRouter(store, tokens, demoserver.RouterConfig{
		AllowedOrigins: middleware.ParseOrigins(cfg.AllowedOrigins),
		OpenAPI:        middleware.DefaultOpenAPIValidatorConfig(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("demo server listening", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutting down demo server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}

	slog.Info("demo server stopped gracefully")
}
