// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrKeyUnavailable is returned when the key was not derived within the
	// wait bound or the ring was locked.
	ErrKeyUnavailable = errors.New("encryption key unavailable")
	// ErrDecrypt is returned for ciphertext that cannot be authenticated.
	ErrDecrypt = errors.New("decryption failed")
)
