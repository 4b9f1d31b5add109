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

// NewPipeline builds an apis.CreationStrategy chain that runs steps in
// order against every instance a Registry constructs. Nil steps are
// dropped so callers can pass conditionally-built strategies without
// filtering first.
func NewPipeline(steps ...apis.CreationStrategy) *Pipeline {
	out := make([]apis.CreationStrategy, 0, len(steps))
	for _, s := range steps {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Pipeline{steps: out}
}

// Pipeline is an ordered, immutable sequence of construction steps.
type Pipeline struct {
	steps []apis.CreationStrategy
}

// Apply runs every step against obj in order, stopping at the first step
// that returns a ReturnValue outside {Success, NothingToDo}.
func (p *Pipeline) Apply(obj apis.IObject, factory apis.IObjectFactory) apis.ReturnValue {
	for _, step := range p.steps {
		if rv := step.Apply(obj, factory); !rv.Ok() {
			return rv
		}
	}
	return apis.Success
}
