package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lajubus/lajubus/internal/pkg/logger"
)

// GracefulServer wraps Echo with signal-driven graceful shutdown.
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
	cleanups        []func(context.Context) error
}

// NewGracefulServer creates a new server with graceful shutdown.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// RegisterCleanup adds a function run during shutdown, after the HTTP
// listener stops. Cleanups run in registration order.
func (s *GracefulServer) RegisterCleanup(fn func(context.Context) error) {
	s.cleanups = append(s.cleanups, fn)
}

// Start starts the server and blocks until an interrupt or SIGTERM.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and runs registered cleanups.
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	for _, fn := range s.cleanups {
		if err := fn(ctx); err != nil {
			s.logger.Error("Cleanup failed during shutdown", logger.Err(err))
		}
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
