// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

// mapHTTPError returns nil when resp carries the expected status.
func mapHTTPError(endpoint string, resp *resty.Response, expected int) error {
	if resp.StatusCode() == expected {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s: %s", ErrUnauthorized, endpoint, body)
	}

	return &RemoteError{Endpoint: endpoint, Status: resp.StatusCode(), Body: body}
}

// mapTransportError classifies a failure that produced no response.
func mapTransportError(ctx context.Context, endpoint string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrCancelled, endpoint, ctxErr)
	}

	return fmt.Errorf("%w: %s: %w", ErrNetwork, endpoint, err)
}
