// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

// Client is the foreground end of a bridge.
type Client struct {
	conn   Conn
	logger *logger.Logger

	mu        sync.Mutex
	pending   map[string]chan Message
	listeners map[string]map[*Listener]struct{}
	closed    bool

	loopDone chan struct{}
}

// NewClient starts reading conn. Close the client to stop it.
func NewClient(conn Conn, log *logger.Logger) *Client {
	c := &Client{
		conn:      conn,
		logger:    log.Component("bridge-client"),
		pending:   make(map[string]chan Message),
		listeners: make(map[string]map[*Listener]struct{}),
		loopDone:  make(chan struct{}),
	}
	go c.receive()
	return c
}

// Call invokes action with typed params and decodes the result into R.
func Call[P, R any](ctx context.Context, c *Client, action Action, params P) (R, error) {
	var out R

	res, err := c.Do(ctx, action, params, nil)
	if err != nil {
		return out, err
	}
	if len(res.Data) > 0 {
		if err := json.Unmarshal(res.Data, &out); err != nil {
			return out, fmt.Errorf("%w: decode %s result: %v", ErrInternal, action, err)
		}
	}
	return out, nil
}

// Do sends one request and waits for its response. buffers move to the
// host with the request.
func (c *Client) Do(ctx context.Context, action Action, params any, buffers [][]byte) (Result, error) {
	encoded, err := json.Marshal(params)
	if err != nil {
		return Result{}, fmt.Errorf("%w: encode %s params: %v", ErrInvalidParams, action, err)
	}

	req := Message{
		Type:    MessageRequest,
		ID:      uuid.NewString(),
		Action:  action,
		Params:  encoded,
		Buffers: buffers,
	}
	key := req.key()
	done := make(chan Message, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Result{}, ErrClosed
	}
	c.pending[key] = done
	c.mu.Unlock()

	if err := c.conn.Send(ctx, req); err != nil {
		c.forget(key)
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
		return Result{}, err
	}

	select {
	case resp := <-done:
		if resp.Error != nil {
			return Result{}, decodeError(resp.Error)
		}
		return Result{Data: resp.Data, Buffers: resp.Buffers}, nil
	case <-ctx.Done():
		c.forget(key)
		c.sendCancel(req)
		return Result{}, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	case <-c.loopDone:
		return Result{}, ErrClosed
	}
}

func (c *Client) sendCancel(req Message) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	msg := Message{Type: MessageCancel, ID: req.ID, Action: req.Action}
	if err := c.conn.Send(ctx, msg); err != nil && !errors.Is(err, ErrClosed) {
		c.logger.Warn().Err(err).Str("action", string(req.Action)).Msg("cancel not delivered")
	}
}

func (c *Client) forget(key string) {
	c.mu.Lock()
	delete(c.pending, key)
	c.mu.Unlock()
}

func (c *Client) receive() {
	defer c.shutdown()

	for {
		select {
		case <-c.conn.Done():
			return
		case msg := <-c.conn.Receive():
			switch msg.Type {
			case MessageResponse:
				c.resolve(msg)
			case MessageNotification:
				c.publish(Notification{Name: string(msg.Action), Data: msg.Data})
			default:
				c.logger.Warn().Str("type", string(msg.Type)).Msg("unexpected message type")
			}
		}
	}
}

func (c *Client) resolve(msg Message) {
	key := msg.key()

	c.mu.Lock()
	done, ok := c.pending[key]
	delete(c.pending, key)
	c.mu.Unlock()

	if !ok {
		// the caller gave up already
		return
	}
	done <- msg
}

// Subscribe registers a listener for notifications named name.
func (c *Client) Subscribe(name string) (*Listener, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	l := newListener(name, c)
	if c.listeners[name] == nil {
		c.listeners[name] = make(map[*Listener]struct{})
	}
	c.listeners[name][l] = struct{}{}
	return l, nil
}

func (c *Client) unsubscribe(l *Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if set, ok := c.listeners[l.name]; ok {
		delete(set, l)
		if len(set) == 0 {
			delete(c.listeners, l.name)
		}
	}
}

func (c *Client) publish(n Notification) {
	c.mu.Lock()
	targets := make([]*Listener, 0, len(c.listeners[n.Name]))
	for l := range c.listeners[n.Name] {
		targets = append(targets, l)
	}
	c.mu.Unlock()

	for _, l := range targets {
		if !l.publish(n) {
			c.logger.Warn().Str("name", n.Name).Msg("listener queue full, notification dropped")
		}
	}
}

// Close tears the connection down. In-flight calls fail with ErrClosed and
// every listener is closed.
func (c *Client) Close() error {
	err := c.conn.Close()
	<-c.loopDone
	return err
}

func (c *Client) shutdown() {
	c.mu.Lock()
	c.closed = true
	c.pending = make(map[string]chan Message)
	var all []*Listener
	for _, set := range c.listeners {
		for l := range set {
			all = append(all, l)
		}
	}
	c.listeners = make(map[string]map[*Listener]struct{})
	c.mu.Unlock()

	for _, l := range all {
		l.close()
	}
	close(c.loopDone)
}
