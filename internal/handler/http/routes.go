// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Relay routes.
const (
	clientsRoute     = "/api/sync/v1/clients"
	fullRoute        = "/api/sync/v1/full"
	changesRoute     = "/api/sync/v1/changes"
	attachmentsRoute = "/api/sync/v1/attachments"
	versionRoute     = "/api/version"
	metricsRoute     = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(versionRoute, h.getServerVersion)
		if h.metrics != nil {
			r.Handle(metricsRoute, h.metrics.Handler())
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(clientsRoute, h.registerClient)

		r.Get(fullRoute, h.downloadSnapshot)
		r.With(withContentHash).Post(fullRoute, h.uploadSnapshot)

		r.Get(changesRoute, h.listChanges)
		r.With(withContentHash).Post(changesRoute, h.uploadChanges)

		r.Get(attachmentsRoute, h.downloadAttachment)
		r.With(withContentHash).Post(attachmentsRoute, h.uploadAttachment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
