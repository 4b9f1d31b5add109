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

package typeregistry

import (
	"github.com/ljaaskela/strata/anyval"
	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/metadata"
	"github.com/ljaaskela/strata/reactive"
)

// NewMetadataStrategy returns the apis.CreationStrategy that wires a
// metadata.Container onto any obj implementing apis.IMetadataContainer
// whose ClassInfo declares at least one member. schedule is forwarded to
// every Property/Function the container lazily materialises, so Deferred
// sets and handler invocations drain on the same scheduler as the rest of
// the runtime; pass nil where no scheduler is wired (tests).
func NewMetadataStrategy(schedule func(func())) apis.CreationStrategy {
	return metadataStrategy{schedule: schedule}
}

type metadataStrategy struct {
	schedule func(func())
}

func (s metadataStrategy) Apply(obj apis.IObject, factory apis.IObjectFactory) apis.ReturnValue {
	mc, ok := obj.(apis.IMetadataContainer)
	if !ok {
		return apis.NothingToDo
	}
	members := factory.ClassInfo().Members
	if len(members) == 0 {
		return apis.NothingToDo
	}
	if mc.Metadata() != nil {
		return apis.NothingToDo
	}

	container := metadata.NewContainer(members, s.newProperty, s.newFunction)
	mc.SetMetadataContainer(container)
	return apis.Success
}

// newProperty materialises a Property from desc, seating its backing Any
// from desc.DefaultBytes when desc.TypeUID names one of the builtin scalar
// kinds. Struct-shaped and other user-declared property types have no
// generic zero-argument constructor available purely from a UID and are
// left unseeded; a class needing one must seat its Any itself before
// registering, or supply a custom apis.CreationStrategy that does.
func (s metadataStrategy) newProperty(desc apis.MemberDesc) apis.IProperty {
	p := reactive.NewProperty(s.schedule)
	if value, err := builtinDefault(desc.TypeUID, desc.DefaultBytes); err == nil && value != nil {
		p.SetAny(value)
	}
	return p
}

// newFunction materialises a Function (or, for EventMember, an Event) from
// desc. Neither carries a primary target yet; the type registry's caller
// wires one via apis.IFunctionInternal.SetInvokeCallback/Bind once the
// concrete object knows which of its own methods to dispatch to.
func (s metadataStrategy) newFunction(desc apis.MemberDesc) apis.IFunction {
	return reactive.NewFunction(s.schedule)
}

// builtinDefault decodes raw into the Any for one of the fixed builtin
// scalar UIDs. Returns (nil, nil) for any other UID.
func builtinDefault(typeUID apis.UID, raw []byte) (apis.IAny, error) {
	switch typeUID {
	case anyval.BoolUID:
		return decodeAny(raw, anyval.NewBool)
	case anyval.Int8UID:
		return decodeAny(raw, anyval.NewInt8)
	case anyval.Int16UID:
		return decodeAny(raw, anyval.NewInt16)
	case anyval.Int32UID:
		return decodeAny(raw, anyval.NewInt32)
	case anyval.Int64UID:
		return decodeAny(raw, anyval.NewInt64)
	case anyval.Uint8UID:
		return decodeAny(raw, anyval.NewUint8)
	case anyval.Uint16UID:
		return decodeAny(raw, anyval.NewUint16)
	case anyval.Uint32UID:
		return decodeAny(raw, anyval.NewUint32)
	case anyval.Uint64UID:
		return decodeAny(raw, anyval.NewUint64)
	case anyval.Float32UID:
		return decodeAny(raw, anyval.NewFloat32)
	case anyval.Float64UID:
		return decodeAny(raw, anyval.NewFloat64)
	case anyval.StringUID:
		return decodeAny(raw, anyval.NewString)
	default:
		return nil, nil
	}
}

// decodeAny seats a zero-valued Any of T via newZero, then overwrites it
// with raw if non-empty.
func decodeAny[T any](raw []byte, newZero func(T) (*anyval.SimpleAny[T], error)) (apis.IAny, error) {
	var zero T
	a, err := newZero(zero)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		a.SetData(raw, a.GetTypeUID())
	}
	return a, nil
}
