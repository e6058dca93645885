package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"geo-attend/internal/shared/audit"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StartHTTPServer listens on cfg.Port and serves handler until SIGINT or
// SIGTERM.
func StartHTTPServer(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger audit.Logger,
	onShutdown func(),
) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		if onShutdown != nil {
			onShutdown()
		}
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, ln, handler, cfg, auditLogger, onShutdown)
}

// Serve runs handler on ln until ctx is done, then drains connections,
// records a SERVER_SHUTDOWN audit entry and calls onShutdown. onShutdown
// also runs when the listener fails.
func Serve(
	ctx context.Context,
	ln net.Listener,
	handler http.Handler,
	cfg ServerConfig,
	auditLogger audit.Logger,
	onShutdown func(),
) error {
	if onShutdown != nil {
		defer onShutdown()
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()
	zap.L().Info("HTTP server running", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("Shutdown requested")
	auditLogger.Log(context.Background(), audit.Entry{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta: map[string]any{
			"addr": ln.Addr().String(),
		},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
		return fmt.Errorf("shutdown http: %w", err)
	}
	zap.L().Info("Server exited gracefully")
	return nil
}
