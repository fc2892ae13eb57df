package builder

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

type closer struct {
	name string
	fn   func()
}

// App owns the HTTP server and the resources released after it stops
type App struct {
	server  *http.Server
	closers []closer
	logger  *zap.Logger
}

func (a *App) onClose(name string, fn func()) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}

// Run serves HTTP until SIGINT/SIGTERM or a listener failure
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.server.Addr))
		serveErr <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
			a.release()
			return err
		}
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
	}

	return a.shutdown()
}

// shutdown waits for in-flight generations to finish before releasing resources
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("Draining HTTP server", zap.Duration("timeout", shutdownTimeout))
	err := a.server.Shutdown(ctx)
	if err != nil {
		a.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	a.release()
	return err
}

// release runs closers in reverse registration order
func (a *App) release() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		a.logger.Info("Releasing resource", zap.String("resource", c.name))
		c.fn()
	}

	a.logger.Info("Application stopped")
	_ = a.logger.Sync()
}
