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

// Package uidgen derives the 128-bit UIDs that identify every interface,
// class and builtin type in the runtime from the type's fully-qualified Go
// name, so that the same type always derives the same UID across builds
// and across processes without a central allocator.
package uidgen

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/ljaaskela/strata/apis"
)

// rootNamespace is the fixed namespace every derived UID hangs off. It has
// no meaning beyond being a stable constant: changing it would silently
// reassign every UID in the system.
var rootNamespace = uuid.MustParse("7c2b6e9e-7d0a-4f0e-9f0d-2a5a7d9c6b31")

// Of derives the UID of T's nearest named type, unwrapping pointer, slice,
// array, chan and map containers so that T, *T and []T all resolve to the
// identity of the same named type.
func Of[T any]() (apis.UID, error) {
	var zero T
	return OfType(reflect.TypeOf(zero))
}

// OfType derives the UID of t's nearest named type. See Of for the
// unwrapping policy.
func OfType(t reflect.Type) (apis.UID, error) {
	named, err := normalize(t)
	if err != nil {
		return apis.ZeroUID, err
	}
	return OfName(qualifiedName(named)), nil
}

// OfName derives a UID deterministically from an arbitrary qualified name,
// for classes that register under a name not backed by a Go type (e.g. a
// builtin like "strata.int32").
func OfName(qualified string) apis.UID {
	return apis.UID(uuid.NewSHA1(rootNamespace, []byte(qualified)))
}

// qualifiedName renders a named type's PkgPath and Name as a single
// dotted string, the input to the SHA-1 derivation.
func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}
