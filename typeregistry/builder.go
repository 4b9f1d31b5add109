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

// Build assembles a Registry running the three standard pipeline steps, in
// the only order that is correct: seat the control block, install the
// self-weak handle from it, then wire a metadata container (which does not
// itself need the control block, but runs last so a custom strategy can
// still see fully wired metadata). extra is appended after the three
// standard steps for call sites with additional, type-specific wiring.
func Build(schedule func(func()), extra ...apis.CreationStrategy) *Registry {
	steps := append([]apis.CreationStrategy{
		NewControlBlockStrategy(),
		NewSelfWeakStrategy(),
		NewMetadataStrategy(schedule),
	}, extra...)
	return New(steps...)
}
