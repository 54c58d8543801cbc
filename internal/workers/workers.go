// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-notes-sync/internal/adapter"
	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/metrics"
	"github.com/MKhiriev/go-notes-sync/models"
)

// Notification names.
const (
	NotifyJobStarted  = "Jobs/started"
	NotifyJobFinished = "Jobs/finished"
	NotifyJobFailed   = "Jobs/failed"
)

// Trigger events accepted by [Scheduler.Trigger].
const (
	EventOnline     = "online"
	EventForeground = "foreground"
)

const (
	triggerSchedule = "schedule"
	triggerManual   = "manual"

	maxRetryDelay = 30 * time.Second
)

// JobFunc is one unit of background work.
type JobFunc func(ctx context.Context) error

// Job is a named JobFunc. A zero Interval means the job only runs on
// demand.
type Job struct {
	Name     string
	Interval time.Duration
	Run      JobFunc
}

type job struct {
	Job
	running atomic.Bool
}

type Scheduler struct {
	notifier       Notifier
	metrics        JobMetrics
	retryAttempts  uint64
	retryBaseDelay time.Duration
	logger         *logger.Logger

	mu     sync.Mutex
	jobs   map[string]*job
	order  []string
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(cfg config.ClientWorkers, notifier Notifier, metrics JobMetrics, log *logger.Logger) *Scheduler {
	return &Scheduler{
		notifier:       notifier,
		metrics:        metrics,
		retryAttempts:  cfg.RetryAttempts,
		retryBaseDelay: cfg.RetryBaseDelay,
		logger:         log.Component("scheduler"),
		jobs:           make(map[string]*job),
	}
}

// Register adds a job. It must be called before Start.
func (s *Scheduler) Register(j Job) error {
	if j.Name == "" || j.Run == nil || j.Interval < 0 {
		return ErrInvalidJob
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrSchedulerStarted
	}
	if _, ok := s.jobs[j.Name]; ok {
		return fmt.Errorf("%w: %s", ErrJobExists, j.Name)
	}
	s.jobs[j.Name] = &job{Job: j}
	s.order = append(s.order, j.Name)
	return nil
}

// Jobs returns the registered job names in registration order.
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.order...)
}

// Start ticks every periodic job until ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrSchedulerStarted
	}
	ctx, s.cancel = context.WithCancel(ctx)

	for _, name := range s.order {
		j := s.jobs[name]
		if j.Interval == 0 {
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, j)
	}

	s.logger.Info().Strs("jobs", s.order).Msg("scheduler started")
	return nil
}

// Stop cancels the periodic loops and waits for running ticks to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info().Msg("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, j *job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// errors are already logged and published by run
			_, _ = s.run(ctx, j, triggerSchedule)
		}
	}
}

// RunJob runs the named job now and returns its outcome. A run that finds
// the job busy returns a skipped result and no error.
func (s *Scheduler) RunJob(ctx context.Context, name string) (models.JobResult, error) {
	return s.runNamed(ctx, name, triggerManual)
}

// Trigger reacts to an environment event. Online and foreground events run
// the sync job immediately.
func (s *Scheduler) Trigger(ctx context.Context, event string) (models.JobResult, error) {
	switch event {
	case EventOnline, EventForeground:
		return s.runNamed(ctx, JobSync, event)
	default:
		return models.JobResult{}, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
}

func (s *Scheduler) runNamed(ctx context.Context, name, trigger string) (models.JobResult, error) {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()

	if !ok {
		return models.JobResult{}, fmt.Errorf("%w: %q", ErrUnknownJob, name)
	}
	return s.run(ctx, j, trigger)
}

func (s *Scheduler) run(ctx context.Context, j *job, trigger string) (models.JobResult, error) {
	result := models.JobResult{Job: j.Name, Trigger: trigger}
	log := s.logger.With().Str("job", j.Name).Str("trigger", trigger).Logger()

	if !j.running.CompareAndSwap(false, true) {
		result.Skipped = true
		s.metrics.ObserveJob(j.Name, metrics.JobSkipped, 0)
		log.Debug().Msg("job already running, skipped")
		return result, nil
	}
	defer j.running.Store(false)

	s.metrics.AddRunningJob(j.Name)
	defer s.metrics.RemoveRunningJob(j.Name)

	s.notifier.Notify(ctx, NotifyJobStarted, result)
	start := time.Now()

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		result.Attempts++
		if result.Attempts > 1 {
			s.metrics.AddJobRetry(j.Name)
		}

		err := safeRun(ctx, j.Run)
		if errors.Is(err, adapter.ErrNetwork) {
			log.Warn().Err(err).Int("attempt", result.Attempts).Msg("job hit a network error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
	result.Duration = time.Since(start)

	switch {
	case errors.Is(err, ErrSkipped):
		result.Skipped = true
		s.metrics.ObserveJob(j.Name, metrics.JobSkipped, result.Duration)
		s.notifier.Notify(ctx, NotifyJobFinished, result)
		log.Debug().Msg("job had nothing to do")
		return result, nil
	case err != nil:
		result.Error = err.Error()
		s.metrics.ObserveJob(j.Name, metrics.JobFailed, result.Duration)
		s.notifier.Notify(ctx, NotifyJobFailed, result)
		log.Err(err).Int("attempts", result.Attempts).Dur("duration", result.Duration).Msg("job failed")
		return result, err
	}

	s.metrics.ObserveJob(j.Name, metrics.JobFinished, result.Duration)
	s.notifier.Notify(ctx, NotifyJobFinished, result)
	log.Info().Int("attempts", result.Attempts).Dur("duration", result.Duration).Msg("job finished")
	return result, nil
}

// backoff is built per run; go-retry backoffs are stateful.
func (s *Scheduler) backoff() retry.Backoff {
	base := s.retryBaseDelay
	if base <= 0 {
		base = time.Second
	}
	b := retry.NewExponential(base)
	b = retry.WithCappedDuration(maxRetryDelay, b)
	return retry.WithMaxRetries(s.retryAttempts, b)
}

func safeRun(ctx context.Context, fn JobFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	return fn(ctx)
}
