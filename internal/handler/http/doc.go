// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP API of the relay.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging,
// request metrics, compression, and body integrity checks are handled in
// this package before requests reach the relay service. Payloads are
// stored and returned as opaque bytes.
package http
