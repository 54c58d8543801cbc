// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
	"github.com/MKhiriev/go-notes-sync/internal/utils"
	"github.com/MKhiriev/go-notes-sync/models"
)

// withContentHash checks an upload body against its X-Content-SHA256
// header. Requests without the header pass through unchecked. It must run
// after gzip decompression: the hash covers the uncompressed body.
func withContentHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		expected := strings.ToLower(strings.TrimSpace(r.Header.Get(models.ContentHashHeader)))
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, ok := readBody(w, r)
		if !ok {
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		actual := utils.SHA256Hex(body)
		if actual != expected {
			log.Error().Str("func", "withContentHash").
				Str("hash from request", expected).
				Str("hashed body", actual).
				Msg("hashes are not equal")
			writeError(w, ErrContentHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "withContentHash").Str("hash", actual).Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
