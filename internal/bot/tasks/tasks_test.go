package tasks_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/bot/tasks"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

type fakeMaintainer struct {
	calls int
	err   error
}

func (f *fakeMaintainer) RunSQLMaintenance(context.Context) error {
	f.calls++
	return f.err
}

type fakeExpirer struct {
	olderThan time.Duration
	calls     int
	expired   int
	err       error
}

func (f *fakeExpirer) ExpireStaleFlows(_ context.Context, olderThan time.Duration) (int, error) {
	f.calls++
	f.olderThan = olderThan
	return f.expired, f.err
}

func newDeps(ttl time.Duration, m *fakeMaintainer, e *fakeExpirer) tasks.TaskDeps {
	return tasks.TaskDeps{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:    m,
		Dialogue: e,
		Config:   &config.Config{Dialogue: config.DialogueConfig{FlowTTL: ttl}},
	}
}

func TestRegisterAllTasks(t *testing.T) {
	t.Parallel()

	got := tasks.RegisterAllTasks(newDeps(time.Hour, &fakeMaintainer{}, &fakeExpirer{}))
	for _, name := range []string{"sql_maintenance", "stale_flow_sweep"} {
		if got[name] == nil {
			t.Errorf("RegisterAllTasks() missing %q", name)
		}
	}
}

func TestSQLMaintenanceTask(t *testing.T) {
	t.Parallel()

	m := &fakeMaintainer{}
	task := tasks.RegisterAllTasks(newDeps(time.Hour, m, &fakeExpirer{}))["sql_maintenance"]
	if err := task(context.Background()); err != nil {
		t.Errorf("task() error = %v", err)
	}

	m.err = errors.New("disk I/O error")
	if err := task(context.Background()); !errors.Is(err, m.err) {
		t.Errorf("task() error = %v, want wrapping %v", err, m.err)
	}
	if m.calls != 2 {
		t.Errorf("RunSQLMaintenance calls = %d, want 2", m.calls)
	}
}

func TestStaleFlowSweepTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ttl       time.Duration
		err       error
		wantCalls int
		wantErr   bool
	}{
		{"sweeps with ttl", 30 * time.Minute, nil, 1, false},
		{"disabled without ttl", 0, nil, 0, false},
		{"propagates error", time.Hour, errors.New("database is locked"), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := &fakeExpirer{expired: 2, err: tt.err}
			task := tasks.RegisterAllTasks(newDeps(tt.ttl, &fakeMaintainer{}, e))["stale_flow_sweep"]

			err := task(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("task() error = %v, wantErr %v", err, tt.wantErr)
			}
			if e.calls != tt.wantCalls {
				t.Errorf("ExpireStaleFlows calls = %d, want %d", e.calls, tt.wantCalls)
			}
			if tt.wantCalls > 0 && e.olderThan != tt.ttl {
				t.Errorf("ExpireStaleFlows olderThan = %v, want %v", e.olderThan, tt.ttl)
			}
		})
	}
}
