// Package server runs the HTTP server until it receives SIGINT or SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexis/glassbudget/internal/api"
	"github.com/alexis/glassbudget/internal/clientconfig"
	"github.com/alexis/glassbudget/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Source picks the client config source for cfg.
func Source(cfg config.Config) clientconfig.Source {
	if cfg.EnvFile != "" {
		return clientconfig.DotenvFile{Path: cfg.EnvFile}
	}
	return clientconfig.Environ{}
}

// New builds the http.Server for cfg.
func New(cfg config.Config) *http.Server {
	router := api.NewRouter(Source(cfg), api.Options{
		Dir:         cfg.Dir,
		EntryFile:   cfg.EntryFile,
		CORSEnabled: cfg.CORSEnabled,
	})
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Run listens on cfg.Addr, writes the startup banner to out and serves
// until ctx is cancelled or a termination signal arrives.
func Run(ctx context.Context, cfg config.Config, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return Serve(ctx, ln, New(cfg), out)
}

// Serve serves srv on ln until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, srv *http.Server, out io.Writer) error {
	addr := ln.Addr().String()
	fmt.Fprintf(out, "Starting Glass Budget server on http://%s\n", addr)
	if _, port, err := net.SplitHostPort(addr); err == nil {
		fmt.Fprintf(out, "Open in browser: http://localhost:%s\n", port)
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
