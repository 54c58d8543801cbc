// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/service"
)

// Metrics records relay request outcomes.
type Metrics interface {
	ObserveRelayRequest(method, route string, code int, duration time.Duration)
	AddStoredChanges(n int)
	Handler() http.Handler
}

type Handler struct {
	services *service.RelayServices
	metrics  Metrics
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.RelayServices, metrics Metrics, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		version:  version,
		logger:   logger,
	}
}
