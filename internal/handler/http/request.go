// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
)

// maxBlobSize caps snapshot and attachment uploads.
const maxBlobSize = 64 << 20

func usernameFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, found := utils.GetUsernameFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Msg("no username in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return username, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBlobSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, "body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		logger.FromRequest(r).Err(err).Msg("failed to read request body")
		writeError(w, "failed to read request body", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteError(w, message, status)
}
