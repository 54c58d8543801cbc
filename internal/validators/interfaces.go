// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks values crossing a trust boundary: changelog
// batches and client registrations arriving at the relay, and sync setup
// and note input arriving at the client controllers.
//
// A [Validator] accepts an optional list of field names to restrict the
// check to; with no fields every rule for the value's type runs.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
