// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>" with a non-empty token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// ErrContentHashMismatch is returned when an upload body does not match
// its X-Content-SHA256 header.
var ErrContentHashMismatch = errors.New("content hash mismatch")
