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

// Notification is the reason a MetadataContainer.Notify fan-out fired.
type Notification uint8

const (
	// Changed indicates the member's value changed.
	Changed Notification = iota
)

// String implements fmt.Stringer.
func (n Notification) String() string {
	switch n {
	case Changed:
		return "Changed"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(n))
	}
}
