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

package anyval

import "github.com/ljaaskela/strata/uidgen"

// Builtin type UIDs, derived once at package init from their qualified
// names so every process agrees on them without a central allocator.
var (
	BoolUID    = uidgen.OfName("strata.bool")
	Int8UID    = uidgen.OfName("strata.int8")
	Int16UID   = uidgen.OfName("strata.int16")
	Int32UID   = uidgen.OfName("strata.int32")
	Int64UID   = uidgen.OfName("strata.int64")
	Uint8UID   = uidgen.OfName("strata.uint8")
	Uint16UID  = uidgen.OfName("strata.uint16")
	Uint32UID  = uidgen.OfName("strata.uint32")
	Uint64UID  = uidgen.OfName("strata.uint64")
	Float32UID = uidgen.OfName("strata.float32")
	Float64UID = uidgen.OfName("strata.float64")
	StringUID  = uidgen.OfName("strata.string")
)

// NewBool, NewInt32, ... seat a SimpleAny around one of the builtin
// scalar kinds under its fixed UID.
func NewBool(v bool) (*SimpleAny[bool], error)       { return New(BoolUID, v) }
func NewInt8(v int8) (*SimpleAny[int8], error)       { return New(Int8UID, v) }
func NewInt16(v int16) (*SimpleAny[int16], error)    { return New(Int16UID, v) }
func NewInt32(v int32) (*SimpleAny[int32], error)    { return New(Int32UID, v) }
func NewInt64(v int64) (*SimpleAny[int64], error)    { return New(Int64UID, v) }
func NewUint8(v uint8) (*SimpleAny[uint8], error)    { return New(Uint8UID, v) }
func NewUint16(v uint16) (*SimpleAny[uint16], error) { return New(Uint16UID, v) }
func NewUint32(v uint32) (*SimpleAny[uint32], error) { return New(Uint32UID, v) }
func NewUint64(v uint64) (*SimpleAny[uint64], error) { return New(Uint64UID, v) }
func NewFloat32(v float32) (*SimpleAny[float32], error) {
	return New(Float32UID, v)
}
func NewFloat64(v float64) (*SimpleAny[float64], error) {
	return New(Float64UID, v)
}
func NewString(v string) (*SimpleAny[string], error) { return New(StringUID, v) }
