// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JobResult describes one scheduler job run. It is both the return value
// of a manual run and the payload of the Jobs notifications.
type JobResult struct {
	Job      string        `json:"job"`
	Trigger  string        `json:"trigger"`
	Skipped  bool          `json:"skipped,omitempty"`
	Attempts int           `json:"attempts"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}
