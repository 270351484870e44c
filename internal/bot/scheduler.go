package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/bot/tasks"
	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

var errSchedulerRunning = errors.New("scheduler is already running")

// Scheduler runs the registered maintenance tasks on their cron schedules.
type Scheduler struct {
	cron    gocron.Scheduler
	log     *slog.Logger
	cfg     *config.SchedulerConfig
	taskMap map[string]tasks.ScheduledTaskFunc

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler for the tasks in taskMap. Jobs are added
// on Start according to cfg; gocron's own diagnostics go to logger.
func NewScheduler(logger *slog.Logger, cfg *config.SchedulerConfig, taskMap map[string]tasks.ScheduledTaskFunc) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "scheduler")

	cron, err := gocron.NewScheduler(gocron.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &Scheduler{cron: cron, log: log, cfg: cfg, taskMap: taskMap}, nil
}

// Start adds a job for every enabled task and starts ticking. Tasks that are
// unknown, have no schedule or are rejected by gocron are logged and skipped.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errSchedulerRunning
	}

	scheduled := 0
	for _, name := range s.taskNames() {
		if s.addJob(name, s.cfg.Tasks[name]) {
			scheduled++
		}
	}

	s.cron.Start()
	s.running = true
	s.log.Info("Scheduler started", "tasks_scheduled", scheduled)
	return nil
}

func (s *Scheduler) taskNames() []string {
	if s.cfg == nil || len(s.cfg.Tasks) == 0 {
		s.log.Warn("No scheduler tasks configured.")
		return nil
	}
	names := make([]string, 0, len(s.cfg.Tasks))
	for name := range s.cfg.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scheduler) addJob(name string, tc config.TaskConfig) bool {
	log := s.log.With("task_name", name)

	task, ok := s.taskMap[name]
	switch {
	case !tc.Enabled:
		log.Info("Skipping disabled task")
		return false
	case !ok:
		log.Warn("Task configured but not registered, skipping")
		return false
	case tc.Schedule == "":
		log.Warn("Task enabled without a schedule, skipping")
		return false
	}

	_, err := s.cron.NewJob(
		gocron.CronJob(tc.Schedule, true),
		gocron.NewTask(s.runTask, name, task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Error("Failed to schedule task", "schedule", tc.Schedule, "error", err)
		return false
	}
	log.Info("Scheduled task", "schedule", tc.Schedule)
	return true
}

func (s *Scheduler) runTask(name string, task tasks.ScheduledTaskFunc) {
	log := s.log.With("task_name", name)
	log.Info("Running scheduled task")

	start := time.Now()
	if err := task(context.Background()); err != nil {
		log.Error("Scheduled task failed", "error", err, "duration", time.Since(start))
		return
	}
	log.Info("Finished scheduled task", "duration", time.Since(start))
}

// Stop shuts the scheduler down, waiting for running jobs to complete.
// Stopping a scheduler that is not running is a no-op.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if err := s.cron.Shutdown(); err != nil {
		s.log.Error("Error during scheduler shutdown", "error", err)
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}
	s.log.Info("Scheduler stopped.")
	return nil
}

// JobCount returns the number of jobs currently scheduled.
func (s *Scheduler) JobCount() int {
	return len(s.cron.Jobs())
}
