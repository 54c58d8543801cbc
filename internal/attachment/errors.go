// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachment

import "fmt"

// FetchError wraps a transport failure while downloading an attachment.
type FetchError struct {
	Path string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch attachment %q: %v", e.Path, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecryptError is returned when a downloaded blob cannot be decrypted.
type DecryptError struct {
	Path string
	Err  error
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("decrypt attachment %q: %v", e.Path, e.Err)
}

func (e *DecryptError) Unwrap() error {
	return e.Err
}

// UploadError wraps a failure while encrypting or uploading an attachment.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload attachment %q: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
