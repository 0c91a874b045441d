// Package scheduler runs the periodic background jobs of the display.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"aura_display/internal/logger"

	"github.com/go-co-op/gocron"
)

// JobFunc is one run of a periodic job.
type JobFunc func(ctx context.Context) error

// Scheduler wraps gocron. Jobs never overlap with themselves and first run
// one interval after Start.
type Scheduler struct {
	scheduler *gocron.Scheduler
	log       *logger.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	timeout   time.Duration
}

const defaultJobTimeout = 30 * time.Second

// New creates a stopped scheduler. Each run gets its own timeout.
func New(log *logger.Logger, jobTimeout time.Duration) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	if jobTimeout <= 0 {
		jobTimeout = defaultJobTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		timeout:   jobTimeout,
	}
}

// Every registers fn under name.
func (s *Scheduler) Every(name string, interval time.Duration, fn JobFunc) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler: job %q needs a positive interval, got %s", name, interval)
	}
	_, err := s.scheduler.Every(interval).Tag(name).SingletonMode().WaitForSchedule().Do(func() {
		s.run(name, fn)
	})
	if err != nil {
		return fmt.Errorf("scheduler: job %q: %w", name, err)
	}
	s.log.Infow("job_scheduled", "job", name, "interval", interval.String())
	return nil
}

func (s *Scheduler) run(name string, fn JobFunc) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := fn(ctx); err != nil {
		s.log.Warnw("job_failed", "job", name, "err", err)
		return
	}
	s.log.Debugw("job_done", "job", name, "took", time.Since(start).String())
}

// Start runs the jobs in the background.
func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
}

// Stop cancels running jobs and stops future ones.
func (s *Scheduler) Stop() {
	s.cancel()
	s.scheduler.Stop()
}

// Len is the number of registered jobs.
func (s *Scheduler) Len() int { return s.scheduler.Len() }
