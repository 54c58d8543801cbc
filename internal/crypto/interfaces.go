// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Encrypter seals plaintext for storage on the relay.
type Encrypter interface {
	// Encrypt returns nonce ‖ ciphertext. It waits for the key up to the
	// configured bound and fails with ErrKeyUnavailable afterwards.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
}

// Decrypter opens ciphertext produced by an Encrypter sharing the same key.
type Decrypter interface {
	// Decrypt fails with ErrDecrypt when the blob is malformed or was sealed
	// with another key.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// Cipher is both an [Encrypter] and a [Decrypter].
type Cipher interface {
	Encrypter
	Decrypter
}
