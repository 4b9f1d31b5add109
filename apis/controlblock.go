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

// ControlBlockHandle is the narrow capability a factory's ConstructInPlace
// needs to wire a freshly-seated instance to a control block a caller has
// already built for it, without this package depending on package
// refcount. Satisfied structurally by *refcount.ControlBlock.
type ControlBlockHandle interface {
	AddStrongRefExternal()
	ReleaseStrongRefExternal()
}
