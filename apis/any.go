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

// IAny is a type-erased value container. Every byte-moving operation is
// bounds-checked against the stored type: the caller-supplied size must
// exactly equal the stored type's size, and the caller-supplied UID must be
// a member of GetCompatibleTypes(); otherwise the operation fails with
// Fail and has no side effect.
type IAny interface {
	IInterface
	// GetData copies the current payload into dst. dst must be exactly the
	// size the stored type requires.
	GetData(dst []byte, uid UID) ReturnValue
	// SetData replaces the payload with src, provided uid and len(src)
	// match the stored type. Returns NothingToDo if src is byte-identical
	// to the current payload, Success if it differs and was written, Fail
	// on a type/size mismatch.
	SetData(src []byte, uid UID) ReturnValue
	// CopyFrom overwrites this Any's payload with other's, provided the
	// types are identical.
	CopyFrom(other IAny) ReturnValue
	// Clone returns a new Any of the same concrete class with an identical
	// payload.
	Clone() IAny
	// GetTypeUID returns the UID of the concrete type currently stored.
	GetTypeUID() UID
	// GetCompatibleTypes returns the set of UIDs this Any will accept in
	// GetData/SetData.
	GetCompatibleTypes() []UID
}

// AnyEqual implements the Any equality contract: identical type UID and
// byte-equal payload.
func AnyEqual(a, b IAny) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.GetTypeUID() != b.GetTypeUID() {
		return false
	}
	// Round-trip through GetData is not available without knowing the
	// size, so payloads are compared through rawBytesser, which concrete
	// Any implementations (anyval) satisfy. If either side does not, the
	// two are reported unequal.
	type rawBytesser interface{ RawBytes() []byte }
	ra, aok := a.(rawBytesser)
	rb, bok := b.(rawBytesser)
	if aok && bok {
		if len(ra.RawBytes()) != len(rb.RawBytes()) {
			return false
		}
		for i := range ra.RawBytes() {
			if ra.RawBytes()[i] != rb.RawBytes()[i] {
				return false
			}
		}
		return true
	}
	return false
}
