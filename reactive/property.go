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

// Package reactive implements the two primitives every component object's
// metadata is built from: Property, a committed value plus an on-changed
// Event, and Function, an invocation target plus a handler list partitioned
// between immediate and deferred dispatch.
package reactive

import (
	"sync"

	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/objectkernel"
)

var propertyUID = apis.UID{0x70, 0x72, 0x6f, 0x70} // "prop" — internal, never registered with a class.

// Property is the concrete apis.IProperty/apis.IPropertyInternal
// implementation. A Property is read-only once MakeReadOnly is called;
// every SetValue after that returns ReadOnly.
type Property struct {
	objectkernel.Core

	mu            sync.Mutex
	value         apis.IAny
	pending       apis.IAny
	hasPending    bool
	pendingQueued bool
	readOnly      bool
	changed       *Function
	scheduler     func(func())
}

// NewProperty seats a Property with no backing Any; SetAny installs one.
// schedule is called to queue a Deferred SetValue's commit; pass nil to
// make Deferred sets behave as Immediate (useful in tests that have no
// scheduler wired).
func NewProperty(schedule func(func())) *Property {
	p := &Property{changed: NewEvent(), scheduler: schedule}
	p.AddInterface(propertyUID, func() apis.IInterface { return p })
	return p
}

// MakeReadOnly marks the property read-only. Idempotent.
func (p *Property) MakeReadOnly() {
	p.mu.Lock()
	p.readOnly = true
	p.mu.Unlock()
}

// SetAny implements apis.IPropertyInternal. One-shot: a second call
// returns Fail.
func (p *Property) SetAny(value apis.IAny) apis.ReturnValue {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.value != nil {
		return apis.Fail
	}
	p.value = value
	return apis.Success
}

// GetAny implements apis.IPropertyInternal.
func (p *Property) GetAny() apis.IAny {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// GetValue implements apis.IProperty. It always returns the committed
// value, never an uncommitted pending one.
func (p *Property) GetValue() apis.IAny {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// OnChanged implements apis.IProperty.
func (p *Property) OnChanged() apis.IEvent { return p.changed }

// SetValue implements apis.IProperty.
func (p *Property) SetValue(value apis.IAny, kind apis.InvokeType) apis.ReturnValue {
	p.mu.Lock()
	if p.readOnly {
		p.mu.Unlock()
		return apis.ReadOnly
	}

	if kind == apis.Deferred && p.scheduler != nil {
		if apis.AnyEqual(p.value, value) && (!p.hasPending || apis.AnyEqual(p.pending, value)) {
			p.mu.Unlock()
			return apis.NothingToDo
		}
		p.pending = value
		p.hasPending = true
		queue := !p.pendingQueued
		p.pendingQueued = true
		p.mu.Unlock()
		if queue {
			p.scheduler(p.commitPending)
		}
		return apis.Success
	}

	if apis.AnyEqual(p.value, value) {
		p.mu.Unlock()
		return apis.NothingToDo
	}
	p.value = value
	p.mu.Unlock()
	p.changed.Invoke(apis.FnArgs{value}, apis.Immediate)
	return apis.Success
}

// commitPending runs on the scheduler's Update, making a coalesced
// Deferred set visible and firing on-changed exactly once no matter how
// many SetValue(Deferred) calls coalesced into it.
func (p *Property) commitPending() {
	p.mu.Lock()
	p.pendingQueued = false
	if !p.hasPending {
		p.mu.Unlock()
		return
	}
	value := p.pending
	p.value = value
	p.hasPending = false
	p.pending = nil
	p.mu.Unlock()
	p.changed.Invoke(apis.FnArgs{value}, apis.Immediate)
}
