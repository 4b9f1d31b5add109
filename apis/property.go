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

// IProperty is a reactive slot: a committed value plus an on-changed event,
// an optional read-only mode, and deferred-set coalescing.
type IProperty interface {
	IInterface
	// SetValue writes value, either immediately or by coalescing into the
	// pending slot for the next scheduler drain. Returns ReadOnly if the
	// property is read-only, NothingToDo if value is byte-equal to the
	// already-committed value (and, for Deferred, also equal to any
	// pending value), Success otherwise.
	SetValue(value IAny, kind InvokeType) ReturnValue
	// GetValue returns the currently committed value; it never reflects an
	// uncommitted pending value.
	GetValue() IAny
	// OnChanged returns the change-notification event, always non-nil.
	OnChanged() IEvent
}

// IPropertyInternal is the one-shot construction-time seating contract used
// by the type registry when it builds a Property from a declared type UID.
type IPropertyInternal interface {
	IInterface
	// SetAny seats the property's backing Any. One-shot: subsequent calls
	// return Fail.
	SetAny(value IAny) ReturnValue
	// GetAny returns the backing Any.
	GetAny() IAny
}
