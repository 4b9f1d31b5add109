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

// IInterface is the root contract every concrete interface transitively
// derives from. It supplies exactly three capabilities: interface
// navigation and the two halves of intrusive strong refcounting.
//
// Concrete objects are reached only through pointer-shaped Go interfaces
// that embed IInterface (directly or transitively); never through a value
// copy. Implementations MUST be safe to Ref/Unref from any goroutine (see
// package refcount), but MUST NOT be assumed safe for concurrent mutation
// of anything reached via GetInterface beyond that.
type IInterface interface {
	// GetInterface returns the sub-object implementing uid, or nil if this
	// object does not expose that interface. Both a value and its address
	// MUST answer GetInterface(uidOf[IInterface]) with an object that,
	// compared by identity, is the same underlying object (testable
	// property: interface-query reflexivity).
	GetInterface(uid UID) IInterface
	// Ref increments the strong reference count of the underlying object.
	Ref()
	// Unref decrements the strong reference count; when it reaches zero the
	// object is destroyed.
	Unref()
}

// ISharedFromObject is installed by a factory immediately after
// construction so that an object can hand out further strong references to
// itself without re-locating its control block. Application interfaces
// never implement this directly; objectkernel.Core supplies it.
type ISharedFromObject interface {
	IInterface
	// SetSelf installs the object's own weak handle. It is one-shot: a
	// second call is ignored. Called exactly once, by the factory, before
	// the newly constructed object is handed to any caller.
	SetSelf(self any)
	// GetSelf returns the previously installed self-weak handle, or the
	// zero value if none has been installed yet.
	GetSelf() any
}
