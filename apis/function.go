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

package apis

// FnArgs is the argument list passed to a Function/Event invocation. It is
// a plain slice of type-erased values; deferred dispatch clones each
// element so the caller's own buffers may be freed before the scheduler
// drains.
type FnArgs []IAny

// CallableFn is a free-function primary target, as configured by
// IFunctionInternal.SetInvokeCallback.
type CallableFn func(args FnArgs) ReturnValue

// BoundFn is a virtual-dispatch primary target bound to an interface
// sub-object pointer, as configured by IFunctionInternal.Bind.
type BoundFn func(ctx any, args FnArgs) ReturnValue

// IFunction is the invocation contract shared by Function and Event. An
// Event is simply a Function with no primary target configured: invoking
// it only fans out to handlers.
type IFunction interface {
	IInterface
	// Invoke dispatches args to the primary target (if any), then to every
	// immediate handler in registration order, then queues every deferred
	// handler as a separate scheduler task. Returns the primary's result if
	// a primary target is set; otherwise Success if any handler ran, else
	// NothingToDo.
	Invoke(args FnArgs, kind InvokeType) ReturnValue
	// AddHandler registers fn with the given dispatch kind. De-duplicated
	// by pointer identity: re-adding an already-registered handler returns
	// NothingToDo.
	AddHandler(fn *Handler, kind InvokeType) ReturnValue
	// RemoveHandler unregisters fn. Returns NothingToDo if fn was not
	// registered.
	RemoveHandler(fn *Handler) ReturnValue
	// HasHandlers reports whether any handler is currently registered.
	HasHandlers() bool
}

// IEvent is an alias for IFunction used where a type has no primary target
// by construction (on-changed events, user-declared events).
type IEvent = IFunction

// Handler is a registered callback, held by pointer so AddHandler/
// RemoveHandler can de-duplicate by identity (the same *Handler value
// added twice is a no-op).
type Handler struct {
	Fn CallableFn
}

// IFunctionInternal configures the primary target of a Function, as
// distinct from its handler list.
type IFunctionInternal interface {
	IInterface
	// SetInvokeCallback configures a free C-function-shaped primary
	// target.
	SetInvokeCallback(fn CallableFn) ReturnValue
	// Bind configures a virtual-dispatch primary target on ctx, the
	// mechanism by which interface-declared fn_X methods are wired.
	Bind(ctx any, fn BoundFn) ReturnValue
}
