// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

// newTestKeyRing uses cheap Argon2 parameters so tests stay fast.
func newTestKeyRing(wait time.Duration) *KeyRing {
	k := NewKeyRing(wait)
	k.argonMemory = 1024
	k.argonThreads = 1
	return k
}

func TestKeyRing_RoundTrip(t *testing.T) {
	k := newTestKeyRing(time.Second)
	k.Unlock("correct horse battery staple")
	ctx := context.Background()

	for _, plaintext := range [][]byte{[]byte("hello"), {}, bytes.Repeat([]byte{0x42}, 1<<16)} {
		sealed, err := k.Encrypt(ctx, plaintext)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if len(plaintext) > 0 && bytes.Contains(sealed, plaintext) {
			t.Fatalf("ciphertext contains plaintext")
		}

		opened, err := k.Decrypt(ctx, sealed)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if !bytes.Equal(opened, plaintext) {
			t.Fatalf("round trip mismatch: got %d bytes, want %d", len(opened), len(plaintext))
		}
		if opened == nil {
			t.Fatalf("Decrypt returned nil slice for empty plaintext")
		}
	}
}

func TestKeyRing_SamePasswordSameKeyAcrossDevices(t *testing.T) {
	a := newTestKeyRing(time.Second)
	b := newTestKeyRing(time.Second)
	a.Unlock("shared")
	b.Unlock("shared")
	ctx := context.Background()

	sealed, err := a.Encrypt(ctx, []byte("note"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	opened, err := b.Decrypt(ctx, sealed)
	if err != nil {
		t.Fatalf("Decrypt on second device error: %v", err)
	}
	if string(opened) != "note" {
		t.Fatalf("got %q, want %q", opened, "note")
	}
}

func TestKeyRing_WrongKeyIsDecryptError(t *testing.T) {
	a := newTestKeyRing(time.Second)
	b := newTestKeyRing(time.Second)
	a.Unlock("one")
	b.Unlock("two")
	ctx := context.Background()

	sealed, err := a.Encrypt(ctx, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if _, err := b.Decrypt(ctx, sealed); !errors.Is(err, ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
	if _, err := a.Decrypt(ctx, []byte{1, 2, 3}); !errors.Is(err, ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt for short blob, got %v", err)
	}
}

func TestKeyRing_WaitTimesOutWhenLocked(t *testing.T) {
	k := newTestKeyRing(20 * time.Millisecond)

	start := time.Now()
	_, err := k.Encrypt(context.Background(), []byte("x"))
	if !errors.Is(err, ErrKeyUnavailable) {
		t.Fatalf("expected ErrKeyUnavailable, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("wait was not bounded")
	}
}

func TestKeyRing_WaitHonoursContext(t *testing.T) {
	k := newTestKeyRing(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := k.WaitForKey(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestKeyRing_WaiterWokenByUnlockAsync(t *testing.T) {
	k := newTestKeyRing(5 * time.Second)
	done := make(chan error, 1)
	go func() {
		_, err := k.WaitForKey(context.Background())
		done <- err
	}()

	k.UnlockAsync("pw")

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WaitForKey error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("waiter was not woken")
	}
}

func TestKeyRing_LockForgetsKey(t *testing.T) {
	k := newTestKeyRing(10 * time.Millisecond)
	k.Unlock("pw")
	k.Lock()

	if _, err := k.WaitForKey(context.Background()); !errors.Is(err, ErrKeyUnavailable) {
		t.Fatalf("expected ErrKeyUnavailable after Lock, got %v", err)
	}

	k.Unlock("pw")
	if _, err := k.WaitForKey(context.Background()); err != nil {
		t.Fatalf("expected key after re-unlock, got %v", err)
	}
}
