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

import "fmt"

// MemberKind distinguishes the three shapes a MemberDesc can describe.
type MemberKind uint8

const (
	// PropertyMember describes a reactive Property slot.
	PropertyMember MemberKind = iota
	// EventMember describes a handler-list-only Function (an Event).
	EventMember
	// FunctionMember describes a Function with a primary target.
	FunctionMember
)

// String implements fmt.Stringer.
func (k MemberKind) String() string {
	switch k {
	case PropertyMember:
		return "Property"
	case EventMember:
		return "Event"
	case FunctionMember:
		return "Function"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// MemberDesc is a compile-time-collected descriptor of one property, event
// or function an interface declares. A class's static metadata is the
// concatenation, in declaration order, of the MemberDesc tables of every
// interface it implements.
type MemberDesc struct {
	// Kind is the shape of the member.
	Kind MemberKind
	// Name is the member's lookup key, unique within one class's metadata.
	Name string
	// TypeUID is the UID of the member's declared type: for a Property, the
	// type of its backing Any; for an Event/Function, the UID reserved for
	// function-shaped members.
	TypeUID UID
	// DefaultBytes is the encoded default value for a Property member, or
	// nil for Event/Function members.
	DefaultBytes []byte
}

// ClassInfo is the static, per-class descriptor published by a factory:
// its UID, its human-readable name, and its flattened member table.
type ClassInfo struct {
	// UID identifies the class.
	UID UID
	// Name is a human-readable class name, used for diagnostics.
	Name string
	// Members is the concatenation, in declaration order, of the member
	// tables of every interface the class implements.
	Members []MemberDesc
}

// IMetadata is the per-instance lazy mirror of a class's static member
// table. The first GetProperty/GetEvent/GetFunction call for a given name
// materialises the corresponding runtime primitive from its MemberDesc and
// caches it; subsequent calls for the same name return the same instance.
// Names absent from the static table return nil.
type IMetadata interface {
	IInterface
	// StaticMetadata returns the class's flattened, declaration-ordered
	// member table.
	StaticMetadata() []MemberDesc
	// GetProperty materialises (or returns the cached) Property for name.
	GetProperty(name string) IProperty
	// GetEvent materialises (or returns the cached) Event for name.
	GetEvent(name string) IEvent
	// GetFunction materialises (or returns the cached) Function for name.
	GetFunction(name string) IFunction
	// Notify fans out a Notification for the member identified by name to
	// any subscriber observing it. Used by the typed-state writer to fire
	// a property's on-changed event without going through SetValue.
	Notify(kind MemberKind, name string, n Notification)
}
