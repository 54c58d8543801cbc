// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-sync/internal/logger"
)

// publishTimeout bounds how long a notification or listener delivery may
// wait on a full queue before it is dropped.
const publishTimeout = 100 * time.Millisecond

var errPeerCancelled = errors.New("cancelled by caller")

// Host serves requests arriving on a Conn.
type Host struct {
	conn     Conn
	registry *Registry
	logger   *logger.Logger

	mu       sync.Mutex
	inflight map[string]context.CancelCauseFunc
	wg       sync.WaitGroup
}

func NewHost(conn Conn, registry *Registry, log *logger.Logger) *Host {
	return &Host{
		conn:     conn,
		registry: registry,
		logger:   log.Component("bridge-host"),
		inflight: make(map[string]context.CancelCauseFunc),
	}
}

// Serve dispatches incoming messages until ctx is done or the connection
// closes. In-flight requests are cancelled and awaited before it returns.
func (h *Host) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		h.wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.conn.Done():
			return nil
		case msg := <-h.conn.Receive():
			switch msg.Type {
			case MessageRequest:
				// registered before the goroutine starts so a cancel read
				// next always finds it
				reqCtx, cancelReq := context.WithCancelCause(ctx)
				h.mu.Lock()
				h.inflight[msg.key()] = cancelReq
				h.mu.Unlock()

				h.wg.Add(1)
				go h.handle(ctx, reqCtx, msg)
			case MessageCancel:
				h.cancel(msg.key())
			default:
				h.logger.Warn().Str("type", string(msg.Type)).Msg("unexpected message type")
			}
		}
	}
}

func (h *Host) handle(ctx, reqCtx context.Context, msg Message) {
	defer h.wg.Done()

	key := msg.key()
	defer func() {
		h.mu.Lock()
		cancel := h.inflight[key]
		delete(h.inflight, key)
		h.mu.Unlock()
		if cancel != nil {
			cancel(nil)
		}
	}()

	reqLogger := h.logger.With().
		Str("action", string(msg.Action)).
		Str("request_id", msg.ID).
		Logger()
	reqCtx = reqLogger.WithContext(reqCtx)

	started := time.Now()
	res, err := h.dispatch(reqCtx, msg)

	if errors.Is(context.Cause(reqCtx), errPeerCancelled) {
		reqLogger.Debug().Dur("duration", time.Since(started)).Msg("request cancelled by caller")
		return
	}

	resp := Message{Type: MessageResponse, ID: msg.ID, Action: msg.Action}
	if err != nil {
		resp.Error = encodeError(err)
		reqLogger.Debug().Err(err).Str("code", resp.Error.Code).Msg("request failed")
	} else {
		resp.Data = res.Data
		resp.Buffers = res.Buffers
	}

	if err := h.conn.Send(ctx, resp); err != nil {
		reqLogger.Debug().Err(err).Msg("response not delivered")
	}
}

func (h *Host) dispatch(ctx context.Context, msg Message) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			res, err = Result{}, fmt.Errorf("%w: handler panicked: %v", ErrInternal, r)
		}
	}()

	action, err := ParseAction(string(msg.Action))
	if err != nil {
		return Result{}, err
	}
	fn, ok := h.registry.lookup(action)
	if !ok {
		return Result{}, fmt.Errorf("%w: no handler for %s", ErrUnknownAction, action)
	}
	return fn(ctx, Request{Action: action, Params: msg.Params, Buffers: msg.Buffers})
}

func (h *Host) cancel(key string) {
	h.mu.Lock()
	cancel, ok := h.inflight[key]
	h.mu.Unlock()
	if ok {
		cancel(errPeerCancelled)
	}
}

// Notify publishes a notification to the foreground. Delivery is best
// effort: a full queue drops the notification after publishTimeout.
func (h *Host) Notify(ctx context.Context, name string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error().Err(err).Str("name", name).Msg("encode notification")
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := h.conn.Send(sendCtx, Message{Type: MessageNotification, Action: Action(name), Data: data}); err != nil {
		h.logger.Warn().Err(err).Str("name", name).Msg("notification dropped")
	}
}
