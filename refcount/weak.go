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

// Weak is a non-owning reference to a T: it observes a Strong's lifetime
// without extending it. A Weak outlives the object it refers to; Upgrade
// reports whether that object is still alive.
type Weak[T any] struct {
	cb *ControlBlock
}

// IsValid reports whether w was ever seated (it may still refer to an
// already-destroyed object; use Upgrade to test that).
func (w Weak[T]) IsValid() bool { return w.cb != nil }

// Expired reports whether the referenced object has already been
// destroyed. Always true for a zero-value Weak.
func (w Weak[T]) Expired() bool { return w.cb == nil || w.cb.Expired() }

// Upgrade attempts to obtain a Strong reference, succeeding only if the
// object has not yet been destroyed. The returned bool mirrors the
// original's "lock succeeded" signal.
func (w Weak[T]) Upgrade() (Strong[T], bool) {
	if w.cb == nil || !w.cb.tryAddStrongRef() {
		return Strong[T]{}, false
	}
	obj, ok := w.cb.obj.(T)
	if !ok {
		w.cb.releaseStrongRef()
		return Strong[T]{}, false
	}
	return Strong[T]{cb: w.cb, obj: obj}, true
}

// Clone returns a new Weak sharing the same control block, with the weak
// count incremented.
func (w Weak[T]) Clone() Weak[T] {
	if w.cb == nil {
		return Weak[T]{}
	}
	w.cb.addWeakRef()
	return Weak[T]{cb: w.cb}
}

// Release decrements the weak count, returning the control block to the
// pool once both strong and weak counts have reached zero. Safe to call on
// an already-released (zeroed) Weak.
func (w *Weak[T]) Release() {
	if w.cb == nil {
		return
	}
	w.cb.releaseWeakRef()
	w.cb = nil
}

// ControlBlock exposes the backing control block.
func (w Weak[T]) ControlBlock() *ControlBlock { return w.cb }

// WeakFromBlock wraps an already-seated control block (whose weak count
// the caller has already accounted for) as a Weak[T].
func WeakFromBlock[T any](cb *ControlBlock) Weak[T] {
	return Weak[T]{cb: cb}
}
