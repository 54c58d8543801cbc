// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the whole resty API is available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with the given per-request timeout and no
// automatic retries. Retrying is the scheduler's decision.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "go-notes-sync")

	return &HTTPClient{Client: client}
}
