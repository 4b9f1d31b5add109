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
	"strings"

	"github.com/ljaaskela/strata/apis"
)

// Describer augments Namer with human-oriented metadata about a class:
// a short description, a coarse category, and a schema version. It exists
// for documentation, debugging, and administrative tooling — never for
// anything on the interface-query hot path.
type Describer interface {
	Namer
	EntityDescription() string
	EntityCategory() string
	EntityVersion() string
}

// ClassDescriber implements Describer over an apis.ClassInfo, the
// runtime's own type-level metadata. Category summarizes the member table
// as a "kind:count" histogram (e.g. "property:2 function:1"); version is
// the class UID rendered as hex, since the runtime has no separate schema
// version concept.
type ClassDescriber struct {
	Info apis.ClassInfo
}

// EntityName implements Namer.
func (d ClassDescriber) EntityName() string {
	if d.Info.Name != "" {
		return d.Info.Name
	}
	return d.Info.UID.String()
}

// EntityDescription implements Describer.
func (d ClassDescriber) EntityDescription() string {
	return fmt.Sprintf("class %s (%d members)", d.EntityName(), len(d.Info.Members))
}

// EntityCategory implements Describer.
func (d ClassDescriber) EntityCategory() string {
	counts := make(map[apis.MemberKind]int)
	var order []apis.MemberKind
	for _, m := range d.Info.Members {
		if counts[m.Kind] == 0 {
			order = append(order, m.Kind)
		}
		counts[m.Kind]++
	}
	if len(order) == 0 {
		return "empty"
	}
	parts := make([]string, 0, len(order))
	for _, kind := range order {
		parts = append(parts, fmt.Sprintf("%s:%d", strings.ToLower(kind.String()), counts[kind]))
	}
	return strings.Join(parts, " ")
}

// EntityVersion implements Describer.
func (d ClassDescriber) EntityVersion() string {
	return d.Info.UID.String()
}

// Describe is a convenience wrapper returning ClassDescriber's full
// one-line summary, for use in error messages and test failure output.
func Describe(info apis.ClassInfo) string {
	d := ClassDescriber{Info: info}
	return fmt.Sprintf("%s: %s [%s]", d.EntityName(), d.EntityDescription(), d.EntityCategory())
}
