// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/config"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
	"github.com/go-resty/resty/v2"
)

// Relay endpoints.
const (
	clientsPath     = "/api/sync/v1/clients"
	fullPath        = "/api/sync/v1/full"
	changesPath     = "/api/sync/v1/changes"
	attachmentsPath = "/api/sync/v1/attachments"
)

type httpSyncTransport struct {
	client *utils.HTTPClient

	mu      sync.RWMutex
	baseURL string
	token   string

	logger *logger.Logger
}

// NewHTTPSyncTransport returns a resty-backed [SyncTransport]. The server is
// set later with SetServer once sync info is known.
func NewHTTPSyncTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) SyncTransport {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetAllowGetMethodPayload(true)

	return &httpSyncTransport{client: client, logger: logger}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetServer implements [SyncTransport].
func (h *httpSyncTransport) SetServer(server string) error {
	baseURL, err := normalizeBaseURL(server)
	if err != nil {
		return fmt.Errorf("invalid relay address: %w", err)
	}

	h.mu.Lock()
	h.baseURL = baseURL
	h.mu.Unlock()
	return nil
}

// SetToken implements [SyncTransport].
func (h *httpSyncTransport) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// RegisterClient implements [SyncTransport]. The relay expects the body on
// a GET and answers 201.
func (h *httpSyncTransport) RegisterClient(ctx context.Context, clientID string) error {
	const endpoint = "GET " + clientsPath

	req, target, err := h.authedRequest(ctx, clientsPath)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterClientRequest{ClientID: clientID}).
		Get(target)
	if err != nil {
		return mapTransportError(ctx, endpoint, err)
	}

	return mapHTTPError(endpoint, resp, http.StatusCreated)
}

// GetFullSnapshot implements [SyncTransport].
func (h *httpSyncTransport) GetFullSnapshot(ctx context.Context) (models.Snapshot, error) {
	const endpoint = "GET " + fullPath

	req, target, err := h.authedRequest(ctx, fullPath)
	if err != nil {
		return models.Snapshot{}, err
	}

	resp, err := req.Get(target)
	if err != nil {
		return models.Snapshot{}, mapTransportError(ctx, endpoint, err)
	}
	if err = mapHTTPError(endpoint, resp, http.StatusOK); err != nil {
		return models.Snapshot{}, err
	}

	snapshot := models.Snapshot{Data: resp.Body()}
	if raw := resp.Header().Get(models.RelayTimeHeader); raw != "" {
		relayTime, parseErr := time.Parse(time.RFC3339Nano, raw)
		if parseErr != nil {
			h.logger.Warn().Err(parseErr).Str("func", "httpSyncTransport.GetFullSnapshot").
				Str("header", raw).Msg("ignoring malformed relay time")
		} else {
			snapshot.RelayTime = relayTime
		}
	}

	return snapshot, nil
}

// UploadFullSnapshot implements [SyncTransport].
func (h *httpSyncTransport) UploadFullSnapshot(ctx context.Context, data []byte) error {
	const endpoint = "POST " + fullPath

	req, target, err := h.authedRequest(ctx, fullPath)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(models.ContentHashHeader, utils.SHA256Hex(data)).
		SetBody(data).
		Post(target)
	if err != nil {
		return mapTransportError(ctx, endpoint, err)
	}

	return mapHTTPError(endpoint, resp, http.StatusCreated)
}

// ListChangelogEntries implements [SyncTransport].
func (h *httpSyncTransport) ListChangelogEntries(ctx context.Context, since *time.Time) ([]models.ChangelogEntry, error) {
	const endpoint = "GET " + changesPath

	req, target, err := h.authedRequest(ctx, changesPath)
	if err != nil {
		return nil, err
	}
	if since != nil {
		req.SetQueryParam("since", since.UTC().Format(time.RFC3339Nano))
	}

	resp, err := req.Get(target)
	if err != nil {
		return nil, mapTransportError(ctx, endpoint, err)
	}
	if err = mapHTTPError(endpoint, resp, http.StatusOK); err != nil {
		return nil, err
	}

	var entries []models.ChangelogEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, &RemoteError{Endpoint: endpoint, Status: resp.StatusCode(), Body: "malformed changes: " + err.Error()}
	}

	h.logger.Debug().Str("func", "httpSyncTransport.ListChangelogEntries").
		Int("count", len(entries)).Msg("pulled changelog entries")
	return entries, nil
}

// UploadChangelogEntries implements [SyncTransport].
func (h *httpSyncTransport) UploadChangelogEntries(ctx context.Context, entries []models.ChangelogEntry) (int, error) {
	const endpoint = "POST " + changesPath

	req, target, err := h.authedRequest(ctx, changesPath)
	if err != nil {
		return 0, err
	}

	body, err := json.Marshal(entries)
	if err != nil {
		return 0, fmt.Errorf("encode changelog entries: %w", err)
	}

	var result models.UploadChangesResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(models.ContentHashHeader, utils.SHA256Hex(body)).
		SetBody(body).
		SetResult(&result).
		Post(target)
	if err != nil {
		return 0, mapTransportError(ctx, endpoint, err)
	}
	if err = mapHTTPError(endpoint, resp, http.StatusCreated); err != nil {
		return 0, err
	}

	return result.Stored, nil
}

// UploadAttachment implements [SyncTransport]. The body is gzip-compressed.
func (h *httpSyncTransport) UploadAttachment(ctx context.Context, path string, data []byte) error {
	const endpoint = "POST " + attachmentsPath

	req, target, err := h.authedRequest(ctx, attachmentsPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err = zw.Write(data); err != nil {
		return fmt.Errorf("compress attachment: %w", err)
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("compress attachment: %w", err)
	}

	resp, err := req.
		SetQueryParam("path", path).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Content-Encoding", "gzip").
		SetHeader(models.ContentHashHeader, utils.SHA256Hex(data)).
		SetBody(buf.Bytes()).
		Post(target)
	if err != nil {
		return mapTransportError(ctx, endpoint, err)
	}

	return mapHTTPError(endpoint, resp, http.StatusCreated)
}

// DownloadAttachment implements [SyncTransport].
func (h *httpSyncTransport) DownloadAttachment(ctx context.Context, path string) ([]byte, error) {
	const endpoint = "GET " + attachmentsPath

	req, target, err := h.authedRequest(ctx, attachmentsPath)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetQueryParam("path", path).Get(target)
	if err != nil {
		return nil, mapTransportError(ctx, endpoint, err)
	}
	if err = mapHTTPError(endpoint, resp, http.StatusOK); err != nil {
		return nil, err
	}

	data := resp.Body()
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// authedRequest returns a request bound to ctx with the bearer token and
// the absolute URL of path.
func (h *httpSyncTransport) authedRequest(ctx context.Context, path string) (*resty.Request, string, error) {
	h.mu.RLock()
	baseURL, token := h.baseURL, h.token
	h.mu.RUnlock()

	if baseURL == "" {
		return nil, "", ErrServerNotSet
	}

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, baseURL + path, nil
}
