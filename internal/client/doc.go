// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// [NewApp] builds the background side (storages, transport, controllers,
// scheduler and bridge host) and the foreground side (bridge client and
// typed stubs) joined by an in-process pipe. The foreground only talks to
// the background through the stubs.
//
// [App.Execute] runs one command given on the command line, [App.Run] keeps
// the scheduler running until the context is done.
package client
