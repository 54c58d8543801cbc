// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared by the client runtime,
// the sync engine, the bridge and the relay: changelog entries, local
// entities, sync bookkeeping and wire payloads.
package models
