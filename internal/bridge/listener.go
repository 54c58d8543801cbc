// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// listenerQueueSize is the number of notifications a listener buffers.
const listenerQueueSize = 32

// Notification is a controller event delivered to listeners.
type Notification struct {
	Name string
	Data json.RawMessage
}

// Decode unmarshals the payload of n into T.
func Decode[T any](n Notification) (T, error) {
	var out T
	if err := json.Unmarshal(n.Data, &out); err != nil {
		return out, fmt.Errorf("decode %s notification: %w", n.Name, err)
	}
	return out, nil
}

// Listener receives the notifications of one name in publish order.
// Notifications published while its queue stays full are dropped.
type Listener struct {
	name   string
	client *Client

	mu     sync.Mutex
	closed bool
	events chan Notification
}

func newListener(name string, client *Client) *Listener {
	return &Listener{
		name:   name,
		client: client,
		events: make(chan Notification, listenerQueueSize),
	}
}

// Name returns the notification name the listener is subscribed to.
func (l *Listener) Name() string {
	return l.name
}

// Events is closed when the listener or its client closes.
func (l *Listener) Events() <-chan Notification {
	return l.events
}

// Close unsubscribes the listener.
func (l *Listener) Close() {
	l.client.unsubscribe(l)
	l.close()
}

func (l *Listener) close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	close(l.events)
}

// publish reports whether n was queued.
func (l *Listener) publish(n Notification) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}

	select {
	case l.events <- n:
		return true
	case <-time.After(publishTimeout):
		return false
	}
}
