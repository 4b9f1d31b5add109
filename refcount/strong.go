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

package refcount

// Strong is an owning reference to a T backed by a ControlBlock. Its zero
// value is a valid, empty (nil) reference. Copying a Strong by value bumps
// no counter by itself; callers must call Clone to obtain an independently
// releasable copy, mirroring the original's explicit AddRef/Release pairs
// rather than Go's usual implicit-copy value semantics.
type Strong[T any] struct {
	cb  *ControlBlock
	obj T
}

// NewStrong seats a brand-new control block around obj and returns the
// first Strong reference to it. destroy is invoked exactly once, when the
// last Strong reference is released; pass nil to let obj be reclaimed by
// the ordinary Go allocator once dropped.
func NewStrong[T any](obj T, destroy func(*ControlBlock)) Strong[T] {
	return Strong[T]{cb: newControlBlock(obj, destroy), obj: obj}
}

// IsValid reports whether s holds a live reference.
func (s Strong[T]) IsValid() bool { return s.cb != nil }

// Get returns the referenced value. Calling Get on an invalid Strong
// returns the zero value of T.
func (s Strong[T]) Get() T { return s.obj }

// Clone returns a new Strong sharing the same control block, with the
// strong count incremented. Clone on an invalid Strong returns another
// invalid Strong.
func (s Strong[T]) Clone() Strong[T] {
	if s.cb == nil {
		return Strong[T]{}
	}
	s.cb.addStrongRef()
	return Strong[T]{cb: s.cb, obj: s.obj}
}

// Release decrements the strong count, running the control block's destroy
// hook when it reaches zero. Release is idempotent-safe to call on an
// already-released (zeroed) Strong: it is simply a no-op.
func (s *Strong[T]) Release() {
	if s.cb == nil {
		return
	}
	s.cb.releaseStrongRef()
	s.cb = nil
	var zero T
	s.obj = zero
}

// Weaken returns a Weak reference sharing the same control block.
func (s Strong[T]) Weaken() Weak[T] {
	if s.cb == nil {
		return Weak[T]{}
	}
	s.cb.addWeakRef()
	return Weak[T]{cb: s.cb}
}

// ControlBlock exposes the backing control block, for callers (a Hive, the
// type registry's self-weak installation strategy) that need to inspect or
// extend reference-count bookkeeping directly.
func (s Strong[T]) ControlBlock() *ControlBlock { return s.cb }

// StrongFromBlock wraps an already-seated control block (whose strong
// count the caller has already accounted for) as a Strong[T]. Used when
// recovering a typed handle from an apis.IInterface-erased value.
func StrongFromBlock[T any](cb *ControlBlock, obj T) Strong[T] {
	return Strong[T]{cb: cb, obj: obj}
}
