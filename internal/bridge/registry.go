// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Request is what a handler receives.
type Request struct {
	Action  Action
	Params  json.RawMessage
	Buffers [][]byte
}

// Result is what a handler returns.
type Result struct {
	Data    json.RawMessage
	Buffers [][]byte
}

// HandlerFunc serves one action.
type HandlerFunc func(ctx context.Context, req Request) (Result, error)

// Registry maps actions to handlers. Build it before handing it to a Host.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Action]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Action]HandlerFunc)}
}

// HandleRaw registers fn for action without any param decoding.
func (r *Registry) HandleRaw(action Action, fn HandlerFunc) error {
	if !action.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[action]; ok {
		return fmt.Errorf("%w: %s", ErrHandlerExists, action)
	}
	r.handlers[action] = fn
	return nil
}

func (r *Registry) lookup(action Action) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[action]
	return fn, ok
}

// Actions lists registered actions.
func (r *Registry) Actions() []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Action, 0, len(r.handlers))
	for a := range r.handlers {
		out = append(out, a)
	}
	return out
}

// Handle registers a typed handler. Params are decoded from JSON into P and
// the result is encoded from R.
func Handle[P, R any](r *Registry, action Action, fn func(ctx context.Context, params P) (R, error)) error {
	return r.HandleRaw(action, func(ctx context.Context, req Request) (Result, error) {
		var params P
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return Result{}, fmt.Errorf("%w: %s: %v", ErrInvalidParams, action, err)
			}
		}

		res, err := fn(ctx, params)
		if err != nil {
			return Result{}, err
		}

		data, err := json.Marshal(res)
		if err != nil {
			return Result{}, fmt.Errorf("%w: encode %s result: %v", ErrInternal, action, err)
		}
		return Result{Data: data}, nil
	})
}
