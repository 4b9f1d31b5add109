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

import "fmt"

// InvokeType selects whether a Property set or a Function/Event invocation
// happens synchronously or is queued for the next scheduler drain.
type InvokeType uint8

const (
	// Immediate dispatches synchronously on the calling goroutine.
	Immediate InvokeType = iota
	// Deferred enqueues the work for the next Scheduler.Update drain.
	Deferred
)

// String implements fmt.Stringer.
func (k InvokeType) String() string {
	switch k {
	case Immediate:
		return "Immediate"
	case Deferred:
		return "Deferred"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}
