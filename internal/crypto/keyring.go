// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the symmetric key used to seal changelog payloads,
// snapshots and attachments before they leave the device.
package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/crypto/argon2"
)

const saltDomain = "go-notes-sync/v1:"

// KeyRing derives an AES-256-GCM key from the master password and serves
// Encrypt/Decrypt calls. Every device of a user derives the same key from
// the same password, so no key material is ever exchanged.
//
// Derivation is slow (Argon2id, 64 MiB). Callers that arrive before it
// finishes wait at most waitTimeout.
type KeyRing struct {
	mu    sync.RWMutex
	key   []byte
	ready chan struct{}

	waitTimeout time.Duration

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyRing returns a locked ring. Use [KeyRing.Unlock] or
// [KeyRing.UnlockAsync] to derive the key.
func NewKeyRing(waitTimeout time.Duration) *KeyRing {
	return &KeyRing{
		ready:        make(chan struct{}),
		waitTimeout:  waitTimeout,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// Unlock derives the key from masterPassword and wakes all waiters.
func (k *KeyRing) Unlock(masterPassword string) {
	key := k.deriveKey(masterPassword)

	k.mu.Lock()
	defer k.mu.Unlock()

	k.key = key
	select {
	case <-k.ready:
	default:
		close(k.ready)
	}
}

// UnlockAsync runs Unlock in its own goroutine.
func (k *KeyRing) UnlockAsync(masterPassword string) {
	go k.Unlock(masterPassword)
}

// Lock forgets the key. Later calls wait for the next Unlock.
func (k *KeyRing) Lock() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.key = nil
	select {
	case <-k.ready:
		k.ready = make(chan struct{})
	default:
	}
}

// WaitForKey returns the key, waiting for derivation to finish but no
// longer than the ring's wait bound.
func (k *KeyRing) WaitForKey(ctx context.Context) ([]byte, error) {
	k.mu.RLock()
	ready := k.ready
	k.mu.RUnlock()

	timer := time.NewTimer(k.waitTimeout)
	defer timer.Stop()

	select {
	case <-ready:
	case <-timer.C:
		return nil, ErrKeyUnavailable
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.key == nil {
		return nil, ErrKeyUnavailable
	}
	return k.key, nil
}

// Encrypt implements [Encrypter]. Output layout: nonce (12 bytes) ‖ ciphertext.
func (k *KeyRing) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	key, err := k.WaitForKey(ctx)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [Decrypter].
func (k *KeyRing) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	key, err := k.WaitForKey(ctx)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	if plaintext == nil {
		plaintext = []byte{}
	}

	return plaintext, nil
}

func (k *KeyRing) deriveKey(masterPassword string) []byte {
	salt := sha256.Sum256([]byte(saltDomain + masterPassword))
	return argon2.IDKey(
		[]byte(masterPassword),
		salt[:16],
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
