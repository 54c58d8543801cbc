// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachment

import (
	"context"

	"github.com/MKhiriev/go-notes-sync/internal/crypto"
	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

//go:generate mockgen -source=fetcher.go -destination=../mock/attachment_mock.go -package=mock

// Downloader is the part of the transport the fetcher needs.
type Downloader interface {
	DownloadAttachment(ctx context.Context, path string) ([]byte, error)
}

// BlobUploader is the part of the transport the uploader needs.
type BlobUploader interface {
	UploadAttachment(ctx context.Context, path string, data []byte) error
}

// Getter returns plaintext attachment data.
type Getter interface {
	GetAttachmentData(ctx context.Context, path string) ([]byte, error)
}

// Putter encrypts and stores plaintext attachment data on the relay.
type Putter interface {
	Upload(ctx context.Context, path string, plaintext []byte) error
}

// Fetcher downloads an attachment and decrypts it. Every call goes to the
// relay; results are never cached and never returned partially.
type Fetcher struct {
	transport Downloader
	decrypter crypto.Decrypter
	logger    *logger.Logger
}

func NewFetcher(transport Downloader, decrypter crypto.Decrypter, log *logger.Logger) *Fetcher {
	return &Fetcher{transport: transport, decrypter: decrypter, logger: log}
}

// GetAttachmentData returns the plaintext stored under path. Failures are a
// [*FetchError] or a [*DecryptError].
func (f *Fetcher) GetAttachmentData(ctx context.Context, path string) ([]byte, error) {
	blob, err := f.transport.DownloadAttachment(ctx, path)
	if err != nil {
		f.logger.Err(err).Str("func", "Fetcher.GetAttachmentData").Str("path", path).Msg("download failed")
		return nil, &FetchError{Path: path, Err: err}
	}

	plain, err := f.decrypter.Decrypt(ctx, blob)
	if err != nil {
		f.logger.Err(err).Str("func", "Fetcher.GetAttachmentData").Str("path", path).Msg("decrypt failed")
		return nil, &DecryptError{Path: path, Err: err}
	}

	if plain == nil {
		plain = []byte{}
	}
	return plain, nil
}
