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

// ConstructFlags modifies how a factory seats a new instance.
type ConstructFlags uint8

const (
	// HiveManaged marks an instance as slab-owned: its control block's
	// destroy hook returns the slot to the owning Hive instead of freeing
	// it, the Go-native stand-in for the original's tagged-pointer bit.
	HiveManaged ConstructFlags = 1 << iota
)

// String implements fmt.Stringer.
func (f ConstructFlags) String() string {
	if f&HiveManaged != 0 {
		return "HiveManaged"
	}
	return fmt.Sprintf("ConstructFlags(%d)", uint8(f))
}
