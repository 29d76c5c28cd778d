// Package scheduler runs periodic maintenance for the dashboard server.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionPruner drops sessions that have been idle for too long.
type SessionPruner interface {
	PruneIdle(idle time.Duration) int
}

// PreferencePruner drops preferences not written within a retention window.
type PreferencePruner interface {
	PruneStale(ctx context.Context, retention time.Duration) (int64, error)
}

// Config holds the maintenance settings.
type Config struct {
	// Schedule is a cron spec or descriptor such as "@every 10m".
	Schedule            string
	SessionIdleTimeout  time.Duration
	PreferenceRetention time.Duration
}

// Scheduler runs the maintenance jobs on a cron schedule.
type Scheduler struct {
	cron        *cron.Cron
	sessions    SessionPruner
	preferences PreferencePruner
	cfg         Config
}

// New creates a Scheduler and registers its jobs.
func New(cfg Config, sessions SessionPruner, preferences PreferencePruner) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cron.PrintfLogger(log.Default())),
			cron.WithChain(cron.Recover(cron.PrintfLogger(log.Default()))),
		),
		sessions:    sessions,
		preferences: preferences,
		cfg:         cfg,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.PruneSessions); err != nil {
		return nil, fmt.Errorf("invalid maintenance schedule %q: %w", cfg.Schedule, err)
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, func() { s.PrunePreferences(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid maintenance schedule %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// PruneSessions closes idle client sessions.
func (s *Scheduler) PruneSessions() {
	if removed := s.sessions.PruneIdle(s.cfg.SessionIdleTimeout); removed > 0 {
		log.Printf("pruned %d idle sessions", removed)
	}
}

// PrunePreferences removes preferences older than the retention window.
func (s *Scheduler) PrunePreferences(ctx context.Context) {
	removed, err := s.preferences.PruneStale(ctx, s.cfg.PreferenceRetention)
	if err != nil {
		log.Printf("failed to prune preferences: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("pruned %d stale preferences", removed)
	}
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	log.Printf("Maintenance scheduled: %s", s.cfg.Schedule)

	<-ctx.Done()

	<-s.cron.Stop().Done()
	log.Println("Maintenance scheduler stopped")
	return nil
}
