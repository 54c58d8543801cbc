// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"sync"
)

// MessageType tells the receiver how to read a Message.
type MessageType string

const (
	MessageRequest      MessageType = "request"
	MessageResponse     MessageType = "response"
	MessageCancel       MessageType = "cancel"
	MessageNotification MessageType = "notification"
)

// Message is the envelope crossing the boundary. Notifications carry the
// notification name in Action and the payload in Data.
type Message struct {
	Type   MessageType     `json:"type"`
	ID     string          `json:"id,omitempty"`
	Action Action          `json:"action,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  *ErrorPayload   `json:"error,omitempty"`

	// Buffers move with the message. The sender must not touch them after
	// sending.
	Buffers [][]byte `json:"-"`
}

// ErrorPayload is an error flattened for the trip across the boundary.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (m Message) key() string {
	return string(m.Action) + "/" + m.ID
}

// Conn is one side of a bounded message channel pair.
type Conn interface {
	// Send blocks while the queue is full, until ctx is done or the
	// connection closes.
	Send(ctx context.Context, msg Message) error
	// Receive returns the incoming queue. It is never closed; watch Done.
	Receive() <-chan Message
	// Done is closed once either side closes the connection.
	Done() <-chan struct{}
	Close() error
}

// DefaultQueueSize bounds each direction of a pipe.
const DefaultQueueSize = 64

type pipeEnd struct {
	in   <-chan Message
	out  chan<- Message
	done chan struct{}
	once *sync.Once
}

// NewPipe returns the foreground and background ends of an in-process
// connection. Closing either end closes both.
func NewPipe(size int) (foreground, background Conn) {
	if size <= 0 {
		size = DefaultQueueSize
	}
	toHost := make(chan Message, size)
	toClient := make(chan Message, size)
	done := make(chan struct{})
	once := &sync.Once{}

	return &pipeEnd{in: toClient, out: toHost, done: done, once: once},
		&pipeEnd{in: toHost, out: toClient, done: done, once: once}
}

func (p *pipeEnd) Send(ctx context.Context, msg Message) error {
	select {
	case <-p.done:
		return ErrClosed
	default:
	}

	select {
	case p.out <- msg:
		return nil
	case <-p.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pipeEnd) Receive() <-chan Message {
	return p.in
}

func (p *pipeEnd) Done() <-chan struct{} {
	return p.done
}

func (p *pipeEnd) Close() error {
	p.once.Do(func() { close(p.done) })
	return nil
}
