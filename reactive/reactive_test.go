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
	"testing"

	"github.com/ljaaskela/strata/anyval"
	"github.com/ljaaskela/strata/apis"
)

func mustInt32(t *testing.T, v int32) apis.IAny {
	t.Helper()
	a, err := anyval.NewInt32(v)
	if err != nil {
		t.Fatalf("NewInt32: %v", err)
	}
	return a
}

func TestProperty_SetValueImmediate(t *testing.T) {
	p := NewProperty(nil)
	p.SetAny(mustInt32(t, 0))

	var notified []int32
	p.OnChanged().AddHandler(&apis.Handler{Fn: func(args apis.FnArgs) apis.ReturnValue {
		notified = append(notified, args[0].(*anyval.SimpleAny[int32]).Value())
		return apis.Success
	}}, apis.Immediate)

	if rv := p.SetValue(mustInt32(t, 5), apis.Immediate); rv != apis.Success {
		t.Fatalf("SetValue() = %v, want Success", rv)
	}
	if p.GetValue().(*anyval.SimpleAny[int32]).Value() != 5 {
		t.Fatalf("GetValue() = %v, want 5", p.GetValue())
	}
	if len(notified) != 1 || notified[0] != 5 {
		t.Fatalf("notified = %v, want [5]", notified)
	}

	if rv := p.SetValue(mustInt32(t, 5), apis.Immediate); rv != apis.NothingToDo {
		t.Fatalf("SetValue() with same value = %v, want NothingToDo", rv)
	}
	if len(notified) != 1 {
		t.Fatalf("notified fired again on no-op set: %v", notified)
	}
}

func TestProperty_ReadOnly(t *testing.T) {
	p := NewProperty(nil)
	p.SetAny(mustInt32(t, 1))
	p.MakeReadOnly()

	if rv := p.SetValue(mustInt32(t, 2), apis.Immediate); rv != apis.ReadOnly {
		t.Fatalf("SetValue() on read-only = %v, want ReadOnly", rv)
	}
}

func TestProperty_DeferredCoalesces(t *testing.T) {
	var queued []func()
	schedule := func(fn func()) { queued = append(queued, fn) }

	p := NewProperty(schedule)
	p.SetAny(mustInt32(t, 0))

	p.SetValue(mustInt32(t, 1), apis.Deferred)
	p.SetValue(mustInt32(t, 2), apis.Deferred)

	if p.GetValue().(*anyval.SimpleAny[int32]).Value() != 0 {
		t.Fatalf("GetValue() before drain = %v, want 0 (uncommitted)", p.GetValue())
	}
	if len(queued) != 1 {
		t.Fatalf("queued = %d tasks, want 1 (coalesced: at most one task per property per drain)", len(queued))
	}

	for _, fn := range queued {
		fn()
	}
	if p.GetValue().(*anyval.SimpleAny[int32]).Value() != 2 {
		t.Fatalf("GetValue() after drain = %v, want 2 (last write wins)", p.GetValue())
	}

	// A fresh deferred set after a drain must queue again.
	p.SetValue(mustInt32(t, 3), apis.Deferred)
	if len(queued) != 2 {
		t.Fatalf("queued = %d tasks after a new drain cycle, want 2", len(queued))
	}
}

func TestFunction_PrimaryAndHandlers(t *testing.T) {
	f := NewFunction(nil)
	var order []string

	f.SetInvokeCallback(func(args apis.FnArgs) apis.ReturnValue {
		order = append(order, "primary")
		return apis.Success
	})
	f.AddHandler(&apis.Handler{Fn: func(args apis.FnArgs) apis.ReturnValue {
		order = append(order, "h1")
		return apis.Success
	}}, apis.Immediate)

	rv := f.Invoke(nil, apis.Immediate)
	if rv != apis.Success {
		t.Fatalf("Invoke() = %v, want Success", rv)
	}
	if len(order) != 2 || order[0] != "primary" || order[1] != "h1" {
		t.Fatalf("order = %v, want [primary h1]", order)
	}
}

func TestFunction_NoHandlersIsNothingToDo(t *testing.T) {
	f := NewEvent()
	if rv := f.Invoke(nil, apis.Immediate); rv != apis.NothingToDo {
		t.Fatalf("Invoke() with no handlers = %v, want NothingToDo", rv)
	}
}

func TestFunction_AddHandlerDedup(t *testing.T) {
	f := NewEvent()
	h := &apis.Handler{Fn: func(apis.FnArgs) apis.ReturnValue { return apis.Success }}

	if rv := f.AddHandler(h, apis.Immediate); rv != apis.Success {
		t.Fatalf("first AddHandler = %v, want Success", rv)
	}
	if rv := f.AddHandler(h, apis.Immediate); rv != apis.NothingToDo {
		t.Fatalf("duplicate AddHandler = %v, want NothingToDo", rv)
	}
	if !f.HasHandlers() {
		t.Fatalf("HasHandlers() = false, want true")
	}

	if rv := f.RemoveHandler(h); rv != apis.Success {
		t.Fatalf("RemoveHandler = %v, want Success", rv)
	}
	if f.HasHandlers() {
		t.Fatalf("HasHandlers() = true after removal, want false")
	}
	if rv := f.RemoveHandler(h); rv != apis.NothingToDo {
		t.Fatalf("second RemoveHandler = %v, want NothingToDo", rv)
	}
}

func TestFunction_DeferredArgsAreCloned(t *testing.T) {
	var queued []func()
	schedule := func(fn func()) { queued = append(queued, fn) }

	f := NewFunction(schedule)
	var seen int32
	f.AddHandler(&apis.Handler{Fn: func(args apis.FnArgs) apis.ReturnValue {
		seen = args[0].(*anyval.SimpleAny[int32]).Value()
		return apis.Success
	}}, apis.Deferred)

	arg := mustInt32(t, 1)
	f.Invoke(apis.FnArgs{arg}, apis.Immediate)

	// Mutate the caller's own Any after Invoke returns but before the
	// scheduler drains: a deferred handler must not observe this.
	arg.SetData(mustInt32(t, 2).(*anyval.SimpleAny[int32]).RawBytes(), anyval.Int32UID)

	for _, fn := range queued {
		fn()
	}
	if seen != 1 {
		t.Fatalf("deferred handler saw %v, want 1 (clone taken at Invoke time)", seen)
	}
}

func TestFunction_DeferredHandlerQueuesOnePerHandler(t *testing.T) {
	var queued int
	schedule := func(fn func()) { queued++; fn() }

	f := NewFunction(schedule)
	f.AddHandler(&apis.Handler{Fn: func(apis.FnArgs) apis.ReturnValue { return apis.Success }}, apis.Deferred)
	f.AddHandler(&apis.Handler{Fn: func(apis.FnArgs) apis.ReturnValue { return apis.Success }}, apis.Deferred)

	f.Invoke(nil, apis.Deferred)
	if queued != 2 {
		t.Fatalf("queued = %d scheduler tasks, want 2", queued)
	}
}
