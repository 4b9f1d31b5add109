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

import (
	"testing"

	"github.com/ljaaskela/strata/apis"
)

func TestControlBlockStrategy_WiresRefcounting(t *testing.T) {
	factory := newGadgetFactory(apis.UID{0x01})
	obj, err := factory.CreateInstance()
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	s := NewControlBlockStrategy()
	if rv := s.Apply(obj, factory); rv != apis.Success {
		t.Fatalf("Apply() = %v, want Success", rv)
	}

	// Before wiring, Core.Ref/Unref are no-ops; after wiring they must
	// delegate to a live control block without panicking.
	obj.Ref()
	obj.Unref()
}

func TestControlBlockStrategy_SkipsObjectsWithoutCore(t *testing.T) {
	s := NewControlBlockStrategy()
	var bare bareObject
	if rv := s.Apply(&bare, nil); rv != apis.NothingToDo {
		t.Fatalf("Apply() on object without a Core = %v, want NothingToDo", rv)
	}
}

// bareObject implements apis.IObject by hand, without embedding
// objectkernel.Core, so it never satisfies objectkernel.WithControlBlock.
type bareObject struct{}

func (*bareObject) GetInterface(apis.UID) apis.IInterface { return nil }
func (*bareObject) Ref()                                  {}
func (*bareObject) Unref()                                {}
func (*bareObject) GetSelf() any                          { return nil }
