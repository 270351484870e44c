package bot_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/bot"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/bot/tasks"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type blockingListener struct{}

func (blockingListener) Start(ctx context.Context) { <-ctx.Done() }

type exitingListener struct{}

func (exitingListener) Start(context.Context) {}

func newScheduler(t *testing.T, cfg *config.SchedulerConfig, taskMap map[string]tasks.ScheduledTaskFunc) *bot.Scheduler {
	t.Helper()
	s, err := bot.NewScheduler(discard(), cfg, taskMap)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	return s
}

func TestScheduler_Start(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }
	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"sql_maintenance":  {Enabled: true, Schedule: "0 0 3 * * *"},
		"stale_flow_sweep": {Enabled: false, Schedule: "0 */10 * * * *"},
		"unknown":          {Enabled: true, Schedule: "0 0 * * * *"},
		"bad_schedule":     {Enabled: true, Schedule: "not a cron"},
	}}
	s := newScheduler(t, cfg, map[string]tasks.ScheduledTaskFunc{
		"sql_maintenance":  noop,
		"stale_flow_sweep": noop,
		"bad_schedule":     noop,
	})

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Start(); err == nil {
		t.Errorf("second Start() error = nil, want error")
	}
	if n := s.JobCount(); n != 1 {
		t.Errorf("JobCount() = %d, want 1", n)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop() error = %v, want nil", err)
	}
}

func TestBot_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	server := &http.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second}
	b := bot.NewBot(discard(), blockingListener{}, newScheduler(t, &config.SchedulerConfig{}, nil), server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestBot_RunFailsWhenListenerExits(t *testing.T) {
	t.Parallel()

	b := bot.NewBot(discard(), exitingListener{}, newScheduler(t, nil, nil), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.Run(ctx); err == nil {
		t.Errorf("Run() error = nil, want unexpected stop error")
	}
}
