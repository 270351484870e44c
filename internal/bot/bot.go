// Package bot wires the Telegram listener, the scheduler and the operational
// HTTP server together and manages their lifecycle.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const httpShutdownTimeout = 5 * time.Second

// Listener receives Telegram updates until ctx is cancelled.
// *github.com/go-telegram/bot.Bot satisfies it.
type Listener interface {
	Start(ctx context.Context)
}

// Bot represents the running application and owns its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	listener  Listener
	scheduler *Scheduler
	server    *http.Server
}

// NewBot creates the orchestrator. server may be nil to disable the HTTP
// endpoints.
func NewBot(logger *slog.Logger, listener Listener, scheduler *Scheduler, server *http.Server) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		listener:  listener,
		scheduler: scheduler,
		server:    server,
	}
}

// Run starts all components and blocks until ctx is cancelled or one of
// them fails. Cancellation is not reported as an error.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.runListener(gCtx) })
	g.Go(func() error { return b.runScheduler(gCtx) })
	if b.server != nil {
		g.Go(func() error { return b.serveHTTP(gCtx) })
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}
	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}

func (b *Bot) runListener(ctx context.Context) error {
	b.logger.Info("Telegram listener starting")
	b.listener.Start(ctx)

	if ctx.Err() == nil {
		b.logger.Warn("Telegram listener returned before shutdown")
		return errors.New("telegram listener stopped unexpectedly")
	}
	b.logger.Info("Telegram listener stopped")
	return nil
}

func (b *Bot) runScheduler(ctx context.Context) error {
	if err := b.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	<-ctx.Done()
	if err := b.scheduler.Stop(); err != nil {
		b.logger.Error("Error stopping scheduler", "error", err)
	}
	return nil
}

// serveHTTP runs the server until ctx is done, then drains it.
func (b *Bot) serveHTTP(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		b.logger.Info("HTTP server listening", "addr", b.server.Addr)
		errCh <- b.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()
	if err := b.server.Shutdown(shutdownCtx); err != nil {
		b.logger.Error("Error shutting down HTTP server", "error", err)
	}
	<-errCh
	b.logger.Info("HTTP server stopped")
	return nil
}
