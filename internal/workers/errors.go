// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrUnknownJob is returned for a job name that was never registered.
	ErrUnknownJob = errors.New("unknown job")
	// ErrUnknownEvent is returned by Trigger for an unsupported event.
	ErrUnknownEvent = errors.New("unknown trigger event")
	ErrJobExists    = errors.New("job already registered")
	ErrInvalidJob   = errors.New("job needs a name and a run function")
	// ErrSchedulerStarted is returned by Start and Register once the
	// scheduler is running.
	ErrSchedulerStarted = errors.New("scheduler already started")
	// ErrSkipped is returned by a job that had nothing to do.
	ErrSkipped = errors.New("job skipped")
	// ErrJobPanicked wraps a panic recovered from a job.
	ErrJobPanicked = errors.New("job panicked")
)
