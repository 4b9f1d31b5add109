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

// Package objectkernel supplies Core, the embeddable base every concrete
// component object carries to satisfy apis.IInterface and
// apis.ISharedFromObject: interface navigation, intrusive ref counting
// delegated to package refcount, and the one-shot self-weak handle the
// type registry installs right after construction.
package objectkernel

import "github.com/ljaaskela/strata/apis"

// Accessor narrows an object down to the sub-object implementing one
// interface. It is the Go-native replacement for the original's
// CRTP-derived byte-offset table: Go cannot express "this interface
// begins N bytes into the object", so each entry instead carries a closure
// that performs the (free, compiler-checked) narrowing conversion.
type Accessor func() apis.IInterface

// ifaceEntry pairs an interface's UID with the closure that narrows the
// owning object down to it.
type ifaceEntry struct {
	uid      apis.UID
	accessor Accessor
}

// Core is embedded by value in every concrete component object. It must be
// embedded, not merely held, so that its exported methods are promoted and
// satisfy apis.IInterface / apis.ISharedFromObject without boilerplate.
//
// A zero-value Core answers only the IInterface/ISharedFromObject queries
// registered via AddInterface; owners must call AddInterface during their
// own construction for every interface UID they want GetInterface to find.
type Core struct {
	table []ifaceEntry
	cb    ControlBlockHandle
	self  any
}

// ControlBlockHandle defers Core's dependency on package refcount to a
// single narrow interface, so objectkernel need not import refcount
// directly and refcount need not know about objectkernel; the type
// registry's control-block installation strategy (and a Hive's
// ConstructInPlace wiring) supply the concrete *refcount.ControlBlock that
// satisfies it. Re-exported from apis so apis.IObjectFactory.
// ConstructInPlace can share the same contract.
type ControlBlockHandle = apis.ControlBlockHandle

// WithControlBlock is implemented by any type embedding Core; it is the
// assertion target the type registry uses to find Core inside a freshly
// constructed object without knowing the object's concrete type.
type WithControlBlock interface {
	SetControlBlock(cb ControlBlockHandle)
}

// AddInterface registers accessor as the narrowing function for uid. Call
// once per interface UID the embedding type implements, typically in an
// init-style constructor helper right after the zero-value object is
// allocated.
func (c *Core) AddInterface(uid apis.UID, accessor Accessor) {
	c.table = append(c.table, ifaceEntry{uid: uid, accessor: accessor})
}

// GetInterface implements apis.IInterface by scanning the registered
// table in registration order and returning the first match.
func (c *Core) GetInterface(uid apis.UID) apis.IInterface {
	for _, e := range c.table {
		if e.uid.Equal(uid) {
			return e.accessor()
		}
	}
	return nil
}

// SetControlBlock wires Core to the control block backing this object's
// strong/weak reference counts. Called exactly once, by the factory, before
// the object is handed to any caller.
func (c *Core) SetControlBlock(cb ControlBlockHandle) {
	if c.cb == nil {
		c.cb = cb
	}
}

// ControlBlock returns the handle Core forwards Ref/Unref to, or nil if
// none has been wired yet. Exposed so the type registry's self-weak
// installation step can recover the concrete *refcount.ControlBlock behind
// the narrow handle it was given.
func (c *Core) ControlBlock() ControlBlockHandle { return c.cb }

// Ref implements apis.IInterface by forwarding to the owning control
// block. A Core with no control block wired (never constructed through a
// factory) treats Ref/Unref as no-ops.
func (c *Core) Ref() {
	if c.cb != nil {
		c.cb.AddStrongRefExternal()
	}
}

// Unref implements apis.IInterface.
func (c *Core) Unref() {
	if c.cb != nil {
		c.cb.ReleaseStrongRefExternal()
	}
}

// SetSelf implements apis.ISharedFromObject. One-shot: a second call is
// ignored.
func (c *Core) SetSelf(self any) {
	if c.self == nil {
		c.self = self
	}
}

// GetSelf implements apis.ISharedFromObject.
func (c *Core) GetSelf() any { return c.self }
