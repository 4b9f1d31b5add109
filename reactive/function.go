/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reactive

import (
	"sync"

	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/objectkernel"
)

var functionUID = apis.UID{0x66, 0x75, 0x6e, 0x63} // "func" — internal, never registered with a class.

// Function is the concrete apis.IFunction/apis.IFunctionInternal
// implementation shared by user-declared functions and events (an Event
// is simply a Function with no primary target ever configured).
//
// handlers is partitioned at deferredBegin: [0, deferredBegin) dispatch
// immediately in registration order, [deferredBegin, len(handlers)) are
// queued as individual scheduler tasks, one per handler, so a slow
// deferred handler cannot block a fast immediate one queued after it.
type Function struct {
	objectkernel.Core

	mu            sync.Mutex
	primary       apis.CallableFn
	boundCtx      any
	boundPrimary  apis.BoundFn
	handlers      []*apis.Handler
	deferredBegin int
	scheduler     func(func())
}

// NewFunction seats a Function with no primary target and no handlers.
// schedule is called to queue a Deferred handler invocation; pass nil to
// make Deferred handlers run immediately (useful in tests with no
// scheduler wired).
func NewFunction(schedule func(func())) *Function {
	f := &Function{scheduler: schedule}
	f.AddInterface(functionUID, func() apis.IInterface { return f })
	return f
}

// NewEvent is an alias for NewFunction: an Event is a Function that is
// never given a primary target.
func NewEvent() *Function { return NewFunction(nil) }

// SetInvokeCallback implements apis.IFunctionInternal.
func (f *Function) SetInvokeCallback(fn apis.CallableFn) apis.ReturnValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.primary = fn
	f.boundPrimary = nil
	return apis.Success
}

// Bind implements apis.IFunctionInternal.
func (f *Function) Bind(ctx any, fn apis.BoundFn) apis.ReturnValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.boundCtx = ctx
	f.boundPrimary = fn
	f.primary = nil
	return apis.Success
}

// AddHandler implements apis.IFunction. Handlers are de-duplicated by
// pointer identity: re-adding an already-registered *Handler is a no-op.
func (f *Function) AddHandler(h *apis.Handler, kind apis.InvokeType) apis.ReturnValue {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.handlers {
		if existing == h {
			return apis.NothingToDo
		}
	}

	if kind == apis.Deferred {
		f.handlers = append(f.handlers, h)
	} else {
		f.handlers = append(f.handlers, nil)
		copy(f.handlers[f.deferredBegin+1:], f.handlers[f.deferredBegin:len(f.handlers)-1])
		f.handlers[f.deferredBegin] = h
		f.deferredBegin++
	}
	return apis.Success
}

// RemoveHandler implements apis.IFunction.
func (f *Function) RemoveHandler(h *apis.Handler) apis.ReturnValue {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.handlers {
		if existing == h {
			f.handlers = append(f.handlers[:i], f.handlers[i+1:]...)
			if i < f.deferredBegin {
				f.deferredBegin--
			}
			return apis.Success
		}
	}
	return apis.NothingToDo
}

// HasHandlers implements apis.IFunction.
func (f *Function) HasHandlers() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers) > 0
}

// Invoke implements apis.IFunction: dispatches to the primary target (if
// any), then to every immediate handler in registration order, then queues
// every deferred handler as a separate scheduler task.
func (f *Function) Invoke(args apis.FnArgs, kind apis.InvokeType) apis.ReturnValue {
	f.mu.Lock()
	primary := f.primary
	boundPrimary := f.boundPrimary
	boundCtx := f.boundCtx
	immediate := append([]*apis.Handler(nil), f.handlers[:f.deferredBegin]...)
	deferred := append([]*apis.Handler(nil), f.handlers[f.deferredBegin:]...)
	f.mu.Unlock()

	var rv apis.ReturnValue
	hasPrimary := false

	switch {
	case primary != nil:
		hasPrimary = true
		rv = primary(args)
	case boundPrimary != nil:
		hasPrimary = true
		rv = boundPrimary(boundCtx, args)
	}

	// Handlers run through the scheduler (either because the caller asked
	// for Deferred dispatch, or because the handler itself was registered
	// Deferred) see a cloned argument vector: the caller's own buffers may
	// be reused or freed as soon as Invoke returns, before the scheduler
	// ever drains.
	var clonedArgs apis.FnArgs
	queuedArgs := func() apis.FnArgs {
		if clonedArgs == nil {
			clonedArgs = cloneArgs(args)
		}
		return clonedArgs
	}

	ranAny := hasPrimary
	for _, h := range immediate {
		if h.Fn == nil {
			continue
		}
		ranAny = true
		if kind == apis.Deferred && f.scheduler != nil {
			h := h
			deferredArgs := queuedArgs()
			f.scheduler(func() { h.Fn(deferredArgs) })
			continue
		}
		h.Fn(args)
	}

	for _, h := range deferred {
		if h.Fn == nil {
			continue
		}
		ranAny = true
		h := h
		if f.scheduler != nil {
			deferredArgs := queuedArgs()
			f.scheduler(func() { h.Fn(deferredArgs) })
		} else {
			h.Fn(args)
		}
	}

	if hasPrimary {
		return rv
	}
	if ranAny {
		return apis.Success
	}
	return apis.NothingToDo
}

// cloneArgs returns an independent copy of args, each element cloned via
// apis.IAny.Clone, so a deferred handler observes a snapshot instead of
// whatever the caller's buffers hold by the time the scheduler drains.
func cloneArgs(args apis.FnArgs) apis.FnArgs {
	if args == nil {
		return nil
	}
	out := make(apis.FnArgs, len(args))
	for i, a := range args {
		if a == nil {
			continue
		}
		out[i] = a.Clone()
	}
	return out
}
