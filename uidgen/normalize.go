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

package uidgen

import (
	"errors"
	"reflect"
)

// defaultMaxUnwrap bounds how many container layers normalize will strip
// before giving up on pathologically nested types.
const defaultMaxUnwrap = 8

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("uidgen: nil reflect.Type provided")
	// ErrTypeNotNamed indicates that the provided type, after unwrapping
	// containers, does not resolve to a named type (e.g. an anonymous
	// struct, func, or interface{}). Only named types carry a stable
	// PkgPath+Name pair a UID can be derived from.
	ErrTypeNotNamed = errors.New("uidgen: type has no stable name")
)

// normalize unwraps ptr/slice/array/chan/map containers and returns the
// nearest named inner type. UID derivation needs a stable (PkgPath, Name)
// pair; a *Foo, []Foo or map[string]Foo must all resolve to the same Foo so
// that Of[*Foo]() and Of[Foo]() agree on the identity they describe.
//
// Unwrapping policy:
//   - ptr/slice/array/chan  -> Elem()
//   - map[K]V: prefer the element side; if unnamed, fall back to the key
//     side; if neither is named, keep unwrapping the element.
//   - default: if t.Name() != "", return t; otherwise ErrTypeNotNamed.
func normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}

	for i := 0; t != nil && i < defaultMaxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			et := t.Elem()
			if et != nil && et.Name() != "" {
				return et, nil
			}
			kt := t.Key()
			if kt != nil && kt.Name() != "" {
				return kt, nil
			}
			t = et

		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrTypeNotNamed
		}
	}

	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrTypeNotNamed
}
