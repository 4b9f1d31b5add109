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

package apis

// CreationStrategy is one step of the registry's post-construction
// pipeline, run in registration order immediately after a factory seats a
// new instance and before it is handed back to the caller. A typical chain
// installs the instance's self-weak reference, then wires its metadata
// container.
type CreationStrategy interface {
	// Apply runs this step against a freshly constructed obj. Returning a
	// non-Success, non-NothingToDo ReturnValue aborts the remainder of the
	// pipeline.
	Apply(obj IObject, factory IObjectFactory) ReturnValue
}
