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

package metadata

import (
	"github.com/ljaaskela/strata/anyval"
	"github.com/ljaaskela/strata/apis"
)

// ReadState decodes prop's currently committed value as T. The second
// return value is false if prop is nil or its backing Any is not a
// *anyval.SimpleAny[T] (a type mismatch between the caller and the
// property's declared type).
func ReadState[T any](prop apis.IProperty) (T, bool) {
	var zero T
	if prop == nil {
		return zero, false
	}
	sa, ok := prop.GetValue().(*anyval.SimpleAny[T])
	if !ok {
		return zero, false
	}
	return sa.Value(), true
}

// WriteState is a scoped, in-place mutator for a Property's value,
// modelled on the same read-modify-commit-on-scope-exit shape the original
// runtime expresses with an RAII writer object: acquire with NewWriteState,
// mutate the value Value() points at, then Close (typically via defer) to
// commit and fire on-changed exactly once.
type WriteState[T any] struct {
	prop    apis.IProperty
	typeUID apis.UID
	value   T
	kind    apis.InvokeType
}

// NewWriteState decodes prop's current value as T and returns a writer
// scoped to it. ok is false under the same conditions as ReadState.
func NewWriteState[T any](prop apis.IProperty, kind apis.InvokeType) (*WriteState[T], bool) {
	cur, ok := ReadState[T](prop)
	if !ok {
		return nil, false
	}
	return &WriteState[T]{
		prop:    prop,
		typeUID: prop.GetValue().GetTypeUID(),
		value:   cur,
		kind:    kind,
	}, true
}

// Value returns a pointer to the in-progress value; mutate it freely
// before Close.
func (w *WriteState[T]) Value() *T { return &w.value }

// Close re-encodes the mutated value and commits it via the property's
// ordinary SetValue path (so on-changed fires exactly once, and
// no-op writes are still suppressed by Property's byte-equality check).
func (w *WriteState[T]) Close() apis.ReturnValue {
	next, err := anyval.New(w.typeUID, w.value)
	if err != nil {
		return apis.Fail
	}
	return w.prop.SetValue(next, w.kind)
}

// Default decodes a class-registered default payload as T, for use by a
// PropertyFactory building a Property's initial value from its
// apis.MemberDesc.DefaultBytes.
func Default[T any](typeUID apis.UID, defaultBytes []byte) (apis.IAny, error) {
	var zero T
	a, err := anyval.New(typeUID, zero)
	if err != nil {
		return nil, err
	}
	if len(defaultBytes) > 0 {
		if rv := a.SetData(defaultBytes, typeUID); rv != apis.Success {
			return a, nil
		}
	}
	return a, nil
}
