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

package diag

import (
	"fmt"

	"github.com/ljaaskela/strata/apis"
)

// Identifier extends Namer with a per-instance identifier: EntityName says
// what kind of thing this is, EntityID says which one. Useful for
// correlating a particular object across a debugging session; the runtime
// itself never relies on EntityID being globally unique.
type Identifier interface {
	Namer
	EntityID() string
}

// ObjectIdentity implements Identifier for a live apis.IObject, pairing
// its class name with a process-local identity derived from the object's
// own pointer — stable for the object's lifetime, meaningless once it is
// collected, exactly like the teacher's "no cross-process guarantee"
// discipline for instance identifiers.
type ObjectIdentity struct {
	Class apis.ClassInfo
	Obj   apis.IObject
}

// EntityName implements Namer.
func (o ObjectIdentity) EntityName() string {
	return ClassDescriber{Info: o.Class}.EntityName()
}

// EntityID implements Identifier.
func (o ObjectIdentity) EntityID() string {
	if o.Obj == nil {
		return ""
	}
	return fmt.Sprintf("%p", o.Obj)
}

// Identify is a convenience wrapper returning "<class>#<id>" for obj,
// suitable for error messages and test failure output; logging itself is
// outside the runtime's scope.
func Identify(class apis.ClassInfo, obj apis.IObject) string {
	id := ObjectIdentity{Class: class, Obj: obj}
	return fmt.Sprintf("%s#%s", id.EntityName(), id.EntityID())
}
