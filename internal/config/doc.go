// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the notes
// sync client and the relay.
//
// Sources are applied in this order, later non-zero values overriding
// earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file (path taken from CONFIG or -c/-config)
//
// [GetClientConfig] and [GetRelayConfig] return validated views for each
// binary.
package config
