// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the relay rejects the token.
	ErrUnauthorized = errors.New("relay unauthorized")
	// ErrRemote matches every [*RemoteError].
	ErrRemote = errors.New("relay error")
	// ErrNotFound additionally matches a [*RemoteError] with status 404.
	ErrNotFound = errors.New("relay resource not found")
	// ErrNetwork is returned when the relay could not be reached.
	ErrNetwork = errors.New("relay unreachable")
	// ErrCancelled is returned when the caller's context ended first.
	ErrCancelled = errors.New("relay call cancelled")
	// ErrServerNotSet is returned by calls made before SetServer.
	ErrServerNotSet = errors.New("relay server not configured")
)

// RemoteError describes an unexpected relay status.
type RemoteError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("relay error: %s: status %d %s", e.Endpoint, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("relay error: %s: status %d: %s", e.Endpoint, e.Status, e.Body)
}

// Is makes errors.Is(err, ErrRemote) hold for every RemoteError and
// errors.Is(err, ErrNotFound) hold for 404s.
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
