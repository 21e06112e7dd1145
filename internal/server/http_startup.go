package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cvision/internal/observability"
	"cvision/internal/store"
)

// Start starts the HTTP server with graceful shutdown support
func (s *Server) Start() error {
	// Initialize observability before anything that records metrics
	om, err := observability.NewObservabilityManager(s.AppConfig.Observability, s.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := om.Shutdown(shutdownCtx); err != nil {
			s.Logger.LogError(err, "Failed to shutdown observability")
		}
	}()

	mux := s.setupRoutes(om)

	// Watch the blob store directory so external edits show up without a restart
	var watcher *store.Watcher
	if s.AppConfig.Store.Watch {
		metrics := om.GetMetrics()
		watcher = store.NewWatcher(s.Store, s.AppConfig.Store.DebounceDelay, func(keys []string) {
			metrics.RecordStoreReload(context.Background(), keys)
		}, s.Logger)
		if err := watcher.Start(); err != nil {
			s.Logger.LogError(err, "Failed to start store watcher, continuing without live reload")
			watcher = nil
		}
	}

	addr := s.Host + ":" + s.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      om.HTTPMiddleware()(mux),
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	go func() {
		scheme := "http"
		if s.TLSConfig.Enabled() {
			scheme = "https"
		}
		s.Logger.Info("Starting server",
			"address", fmt.Sprintf("%s://%s", scheme, addr),
			"tls", s.TLSConfig.Enabled(),
			"auth_enabled", len(s.APIKeys) > 0,
			"rate_limiting", s.RateLimiter != nil,
			"store_watch", watcher != nil)

		var err error
		if s.TLSConfig.Enabled() {
			err = server.ListenAndServeTLS(s.TLSConfig.CertFile, s.TLSConfig.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		s.cleanup(watcher)
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-stop:
		s.Logger.Info("Received shutdown signal", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.Logger.Info("Shutting down server gracefully")
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.cleanup(watcher)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.cleanup(watcher)
	s.Logger.Info("Server shutdown complete")
	return nil
}

// cleanup releases resources held by the server
func (s *Server) cleanup(watcher *store.Watcher) {
	if watcher != nil {
		if err := watcher.Stop(); err != nil {
			s.Logger.LogError(err, "Failed to stop store watcher")
		}
	}
	if s.RateLimiter != nil {
		s.RateLimiter.Close()
	}
}
