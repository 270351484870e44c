// Package tasks implements the scheduled maintenance jobs of the bot.
package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

// Maintainer runs database housekeeping.
type Maintainer interface {
	RunSQLMaintenance(ctx context.Context) error
}

// FlowExpirer resets conversations left mid-flow for too long.
type FlowExpirer interface {
	ExpireStaleFlows(ctx context.Context, olderThan time.Duration) (int, error)
}

// TaskDeps contains the dependencies of scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Store    Maintainer
	Dialogue FlowExpirer
	Config   *config.Config
}
