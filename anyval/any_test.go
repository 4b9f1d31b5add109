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

import (
	"testing"

	"github.com/ljaaskela/strata/apis"
)

func TestSimpleAny_RoundTrip(t *testing.T) {
	a, err := NewInt32(42)
	if err != nil {
		t.Fatalf("NewInt32: %v", err)
	}
	if a.Value() != 42 {
		t.Fatalf("Value() = %d, want 42", a.Value())
	}
	if !a.GetTypeUID().Equal(Int32UID) {
		t.Fatalf("GetTypeUID() mismatch")
	}

	dst := make([]byte, len(a.RawBytes()))
	if rv := a.GetData(dst, Int32UID); rv != apis.Success {
		t.Fatalf("GetData() = %v, want Success", rv)
	}

	if rv := a.GetData(dst, StringUID); rv != apis.Fail {
		t.Fatalf("GetData() with wrong UID = %v, want Fail", rv)
	}

	if rv := a.GetData(make([]byte, len(dst)+1), Int32UID); rv != apis.Fail {
		t.Fatalf("GetData() with wrong-sized dst = %v, want Fail", rv)
	}
}

func TestSimpleAny_SetData(t *testing.T) {
	a, _ := NewInt32(1)
	b, _ := NewInt32(99)

	if rv := a.SetData(b.RawBytes(), Int32UID); rv != apis.Success {
		t.Fatalf("SetData() = %v, want Success", rv)
	}
	if a.Value() != 99 {
		t.Fatalf("Value() after SetData = %d, want 99", a.Value())
	}

	if rv := a.SetData(a.RawBytes(), Int32UID); rv != apis.NothingToDo {
		t.Fatalf("SetData() with byte-identical payload = %v, want NothingToDo", rv)
	}

	if rv := a.SetData(b.RawBytes(), StringUID); rv != apis.Fail {
		t.Fatalf("SetData() with wrong UID = %v, want Fail", rv)
	}
}

func TestSimpleAny_CopyFromAndClone(t *testing.T) {
	a, _ := NewString("hello")
	b, _ := NewString("world")

	if rv := a.CopyFrom(b); rv != apis.Success {
		t.Fatalf("CopyFrom() = %v, want Success", rv)
	}
	if a.Value() != "world" {
		t.Fatalf("Value() after CopyFrom = %q, want world", a.Value())
	}

	clone := a.Clone()
	b2 := clone.(*SimpleAny[string])
	if b2.Value() != "world" {
		t.Fatalf("Clone().Value() = %q, want world", b2.Value())
	}

	if rv := a.CopyFrom(newWrongType(t)); rv != apis.InvalidArgument {
		t.Fatalf("CopyFrom() with mismatched type = %v, want InvalidArgument", rv)
	}
}

func newWrongType(t *testing.T) apis.IAny {
	t.Helper()
	v, err := NewInt32(5)
	if err != nil {
		t.Fatalf("NewInt32: %v", err)
	}
	return v
}

func TestAnyEqual(t *testing.T) {
	a, _ := NewInt32(7)
	b, _ := NewInt32(7)
	c, _ := NewInt32(8)

	if !apis.AnyEqual(a, b) {
		t.Fatalf("AnyEqual(7, 7) = false, want true")
	}
	if apis.AnyEqual(a, c) {
		t.Fatalf("AnyEqual(7, 8) = true, want false")
	}
}
