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

// Package refcount implements the runtime's intrusive strong/weak
// reference counting: a ControlBlock shared between every Strong and Weak
// handle to one object, pooled per-goroutine to avoid a heap allocation on
// every object creation.
package refcount

import "sync/atomic"

// NoCopy documents, for `go vet -copylocks`, that a type embedding it must
// not be copied after first use. Embed it by value in any struct that holds
// a *ControlBlock by value semantics would otherwise obscure.
type NoCopy struct{}

// Lock and Unlock are no-ops; their only purpose is to make NoCopy satisfy
// sync.Locker so `go vet`'s copylocks check flags accidental copies.
func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

// ControlBlock is the shared accounting block behind every Strong/Weak pair
// referencing one object. strong reaching zero destroys the object;
// weak (which starts biased by one for the object's own lifetime) reaching
// zero frees the block itself.
//
// destroy is the Go-native stand-in for the original's external tag bit on
// the control pointer: nil means the object was heap-allocated by the type
// registry and should be released to the pool/GC in the usual way; non-nil
// means the object's storage is owned elsewhere (a Hive slot) and destroy
// is responsible for returning it there instead.
type ControlBlock struct {
	strong atomic.Int32
	weak   atomic.Int32
	// destroy runs the object's destructor and disposes of its storage.
	// Called exactly once, when strong reaches zero.
	destroy func(*ControlBlock)
	// obj is the object this block backs, stored as any so ControlBlock
	// itself stays free of a type parameter; Strong[T]/Weak[T] recover the
	// concrete type with a type assertion at construction time only.
	obj any
}

// newControlBlock seats a fresh block with strong=1, weak=1 (the object's
// own implicit weak reference), obj as the backing object, and destroy as
// its disposal hook. destroy may be nil, meaning "return the block to the
// pool and let obj be collected normally".
func newControlBlock(obj any, destroy func(*ControlBlock)) *ControlBlock {
	cb := getBlock()
	cb.strong.Store(1)
	cb.weak.Store(1)
	cb.obj = obj
	cb.destroy = destroy
	return cb
}

// addStrongRef increments the strong count. Panics if called on a block
// whose strong count has already reached zero: it means a dangling Strong
// was copied, which is a programming error.
func (cb *ControlBlock) addStrongRef() {
	for {
		n := cb.strong.Load()
		if n <= 0 {
			panic("refcount: AddRef on a control block with zero strong references")
		}
		if cb.strong.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// tryAddStrongRef increments the strong count iff it is currently positive,
// the operation Weak.Upgrade needs to avoid resurrecting an object whose
// destructor has already run.
func (cb *ControlBlock) tryAddStrongRef() bool {
	for {
		n := cb.strong.Load()
		if n <= 0 {
			return false
		}
		if cb.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// releaseStrongRef decrements the strong count, running destroy exactly
// once when it reaches zero, then releasing the object's own implicit weak
// reference.
func (cb *ControlBlock) releaseStrongRef() {
	if cb.strong.Add(-1) == 0 {
		if cb.destroy != nil {
			cb.destroy(cb)
		}
		cb.obj = nil
		cb.releaseWeakRef()
	}
}

// addWeakRef increments the weak count.
func (cb *ControlBlock) addWeakRef() {
	cb.weak.Add(1)
}

// releaseWeakRef decrements the weak count, returning the block to the
// pool when it reaches zero.
func (cb *ControlBlock) releaseWeakRef() {
	if cb.weak.Add(-1) == 0 {
		putBlock(cb)
	}
}

// AddStrongRefExternal increments the strong count. Exported for
// objectkernel.Core, whose Ref/Unref must forward to a block without
// objectkernel importing package refcount directly (Core only sees the
// narrow apis.ControlBlockHandle interface this method satisfies).
func (cb *ControlBlock) AddStrongRefExternal() { cb.addStrongRef() }

// ReleaseStrongRefExternal decrements the strong count; see
// AddStrongRefExternal.
func (cb *ControlBlock) ReleaseStrongRefExternal() { cb.releaseStrongRef() }

// AdoptObject binds obj as the block's backing value. A Hive seats a
// control block before the instance it backs exists (the block's destroy
// hook must already be wired when it is handed to ConstructInPlace), then
// calls AdoptObject once the factory has constructed the real instance.
// Call exactly once, before the block is shared beyond the constructing
// goroutine.
func (cb *ControlBlock) AdoptObject(obj any) { cb.obj = obj }

// StrongCount returns the current strong reference count, for diagnostics.
func (cb *ControlBlock) StrongCount() int32 { return cb.strong.Load() }

// WeakCount returns the current weak reference count (including the
// object's own implicit reference), for diagnostics.
func (cb *ControlBlock) WeakCount() int32 { return cb.weak.Load() }

// Expired reports whether the backing object has already been destroyed.
func (cb *ControlBlock) Expired() bool { return cb.strong.Load() <= 0 }
