// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge isolates the background runtime from the foreground.
//
// The two sides share nothing but a [Conn]: a bounded pair of message
// queues. The foreground [Client] sends requests addressed by [Action] and
// waits for the matching response; the background [Host] runs each request
// in its own goroutine against the handler registered in a [Registry].
// Controllers publish notifications through the host, which implements the
// service and workers Notifier interfaces, and the client fans them out to
// [Listener] values.
//
// Parameters and results cross as JSON, so neither side can alias the
// other's memory. Byte buffers are the exception: they travel in
// [Message.Buffers] and ownership moves with the message.
//
// Errors cross as a code and a message and are rebuilt on the client, so
// errors.Is against the adapter, crypto, service and bridge sentinels keeps
// working in the foreground.
package bridge
