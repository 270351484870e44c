package tasks

import (
	"context"
	"fmt"
	"time"
)

const sweepTimeout = 2 * time.Minute

// newStaleFlowSweepTask creates the task that returns chats abandoned in the
// middle of a profile or consultation flow to the idle state.
func newStaleFlowSweepTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "stale_flow_sweep")

	return func(ctx context.Context) error {
		ttl := deps.Config.Dialogue.FlowTTL
		if ttl <= 0 {
			log.DebugContext(ctx, "Flow TTL not configured, skipping sweep")
			return nil
		}

		timeoutCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
		defer cancel()

		startTime := time.Now()
		expired, err := deps.Dialogue.ExpireStaleFlows(timeoutCtx, ttl)
		duration := time.Since(startTime)
		if err != nil {
			log.ErrorContext(ctx, "Stale flow sweep failed", "error", err, "expired", expired, "duration", duration)
			return fmt.Errorf("stale flow sweep failed: %w", err)
		}

		log.InfoContext(ctx, "Stale flow sweep completed", "expired", expired, "ttl", ttl, "duration", duration)
		return nil
	}
}
