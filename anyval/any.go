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

// Package anyval implements apis.IAny over github.com/vmihailenco/msgpack:
// every value is carried as its msgpack-encoded bytes plus the UID of its
// declared type, so GetData/SetData/CopyFrom move payloads as opaque byte
// slices the way the original moves typed bytes through a union, without
// resorting to unsafe copies.
package anyval

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ljaaskela/strata/apis"
)

// SimpleAny is the concrete apis.IAny backing every builtin scalar type
// (int32, float64, string, ...) and, via New, any other type that
// marshals cleanly through msgpack.
//
// A SimpleAny is typically embedded by value inside a Property or passed
// as a Function argument rather than shared through the intrusive
// strong/weak machinery in package refcount, so its IInterface methods are
// a minimal self-contained implementation: GetInterface only ever answers
// for its own IAny identity, and Ref/Unref track a plain counter used by
// diagnostics rather than object lifetime.
type SimpleAny[T any] struct {
	typeUID apis.UID
	value   T
	raw     []byte
	refs    int32
}

// GetInterface implements apis.IInterface. A SimpleAny exposes only
// itself; it answers a lookup for its own type UID, or for the zero UID,
// with itself and anything else with nil.
func (a *SimpleAny[T]) GetInterface(uid apis.UID) apis.IInterface {
	if uid.Equal(a.typeUID) || uid.IsZero() {
		return a
	}
	return nil
}

// Ref implements apis.IInterface.
func (a *SimpleAny[T]) Ref() { a.refs++ }

// Unref implements apis.IInterface.
func (a *SimpleAny[T]) Unref() {
	if a.refs > 0 {
		a.refs--
	}
}

// New seats a SimpleAny around value, encoding it immediately so RawBytes
// and CopyFrom never need to re-encode a value they did not mutate
// themselves.
func New[T any](typeUID apis.UID, value T) (*SimpleAny[T], error) {
	raw, err := msgpack.Marshal(value)
	if err != nil {
		return nil, err
	}
	return &SimpleAny[T]{typeUID: typeUID, value: value, raw: raw}, nil
}

// Value returns the decoded value.
func (a *SimpleAny[T]) Value() T { return a.value }

// RawBytes returns the encoded payload, satisfying the unexported
// rawBytesser interface apis.AnyEqual type-asserts against.
func (a *SimpleAny[T]) RawBytes() []byte { return a.raw }

// GetTypeUID implements apis.IAny.
func (a *SimpleAny[T]) GetTypeUID() apis.UID { return a.typeUID }

// GetCompatibleTypes implements apis.IAny. A SimpleAny is only compatible
// with its own exact declared type; widening conversions are the type
// registry's concern, not the value's.
func (a *SimpleAny[T]) GetCompatibleTypes() []apis.UID { return []apis.UID{a.typeUID} }

// GetData copies the encoded payload into dst. Bounds-checked per the Any
// contract: dst must be exactly the size of the current payload and uid
// must match the value's declared type, or the call fails with apis.Fail
// and leaves dst untouched.
func (a *SimpleAny[T]) GetData(dst []byte, uid apis.UID) apis.ReturnValue {
	if !uid.Equal(a.typeUID) {
		return apis.Fail
	}
	if len(dst) != len(a.raw) {
		return apis.Fail
	}
	copy(dst, a.raw)
	return apis.Success
}

// SetData decodes src into the value. Returns apis.Fail if uid does not
// match the value's declared type or src does not decode as T,
// apis.NothingToDo if src is byte-identical to the current payload (no
// side effect), or apis.Success once the new bytes are committed.
func (a *SimpleAny[T]) SetData(src []byte, uid apis.UID) apis.ReturnValue {
	if !uid.Equal(a.typeUID) {
		return apis.Fail
	}
	var v T
	if err := msgpack.Unmarshal(src, &v); err != nil {
		return apis.Fail
	}
	if bytes.Equal(src, a.raw) {
		return apis.NothingToDo
	}
	a.value = v
	a.raw = append(a.raw[:0], src...)
	return apis.Success
}

// CopyFrom implements apis.IAny, copying other's encoded bytes into a
// after decoding them as T. Returns apis.InvalidArgument if other's
// declared type does not match a's, or if it exposes no raw bytes to copy.
func (a *SimpleAny[T]) CopyFrom(other apis.IAny) apis.ReturnValue {
	if other == nil || !other.GetTypeUID().Equal(a.typeUID) {
		return apis.InvalidArgument
	}
	src, ok := other.(interface{ RawBytes() []byte })
	if !ok {
		return apis.InvalidArgument
	}
	return a.SetData(src.RawBytes(), a.typeUID)
}

// Clone returns an independent copy of a.
func (a *SimpleAny[T]) Clone() apis.IAny {
	raw := make([]byte, len(a.raw))
	copy(raw, a.raw)
	return &SimpleAny[T]{typeUID: a.typeUID, value: a.value, raw: raw}
}
