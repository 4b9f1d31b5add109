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

import "github.com/ljaaskela/strata/apis"

// CustomFn is a plain function shaped like apis.CreationStrategy.Apply,
// for call sites that want to append an ad hoc pipeline step (wiring a
// primary target onto a just-built Function, seating a non-scalar
// Property's Any) without declaring a named type for it.
type CustomFn func(obj apis.IObject, factory apis.IObjectFactory) apis.ReturnValue

// NewCustomStrategy adapts fn into an apis.CreationStrategy.
func NewCustomStrategy(fn CustomFn) apis.CreationStrategy {
	return customStrategy{fn: fn}
}

type customStrategy struct {
	fn CustomFn
}

func (s customStrategy) Apply(obj apis.IObject, factory apis.IObjectFactory) apis.ReturnValue {
	if s.fn == nil {
		return apis.NothingToDo
	}
	return s.fn(obj, factory)
}
