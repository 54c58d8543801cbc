// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package attachment moves encrypted attachment blobs between the relay and
// the client. [Fetcher] downloads and decrypts, [Uploader] encrypts and
// uploads. Neither touches local files.
package attachment
