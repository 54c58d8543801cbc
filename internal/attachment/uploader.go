// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachment

import (
	"context"

	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

// Uploader encrypts attachments and stores them on the relay.
type Uploader struct {
	transport BlobUploader
	encrypter crypto.Encrypter
	logger    *logger.Logger
}

func NewUploader(transport BlobUploader, encrypter crypto.Encrypter, log *logger.Logger) *Uploader {
	return &Uploader{transport: transport, encrypter: encrypter, logger: log}
}

// Upload seals plaintext and uploads it under path. A zero-length
// attachment is uploaded as an authenticated empty ciphertext.
func (u *Uploader) Upload(ctx context.Context, path string, plaintext []byte) error {
	sealed, err := u.encrypter.Encrypt(ctx, plaintext)
	if err != nil {
		return &UploadError{Path: path, Err: err}
	}

	if err = u.transport.UploadAttachment(ctx, path, sealed); err != nil {
		u.logger.Err(err).Str("func", "Uploader.Upload").Str("path", path).Msg("upload failed")
		return &UploadError{Path: path, Err: err}
	}

	u.logger.Debug().Str("func", "Uploader.Upload").Str("path", path).Int("size", len(plaintext)).Msg("attachment uploaded")
	return nil
}
