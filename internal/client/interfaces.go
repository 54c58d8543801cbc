// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Start loads the sync state, applies the configured setup and starts
	// the scheduler.
	Start(ctx context.Context) error

	// Run starts the application and blocks until ctx is done.
	Run(ctx context.Context) error

	// Execute runs a single command and writes its result to out.
	Execute(ctx context.Context, args []string, out io.Writer) error

	// Close stops the scheduler, the bridge and the storages.
	Close() error
}
