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
	"unsafe"

	"github.com/ljaaskela/strata/anyval"
	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/objectkernel"
)

// gadget is the fixture concrete object shared by this package's tests: it
// embeds objectkernel.Core (satisfying apis.IInterface/IObject/
// ISharedFromObject/WithControlBlock by promotion) and stores whatever
// metadata container the pipeline installs.
type gadget struct {
	objectkernel.Core
	mc apis.IMetadata
}

func (g *gadget) SetMetadataContainer(mc apis.IMetadata) {
	if g.mc == nil {
		g.mc = mc
	}
}

func (g *gadget) Metadata() apis.IMetadata { return g.mc }

var gadgetUID = apis.UID{0x67, 0x61, 0x64, 0x67, 0x65, 0x74} // "gadget"

// gadgetFactory is a minimal apis.IObjectFactory whose members table can be
// toggled between empty (no metadata wiring expected) and one Property
// member (metadata wiring expected).
type gadgetFactory struct {
	uid     apis.UID
	members []apis.MemberDesc
}

func newGadgetFactory(uid apis.UID) *gadgetFactory {
	return &gadgetFactory{uid: uid}
}

func newGadgetFactoryWithCounter(uid apis.UID) *gadgetFactory {
	return &gadgetFactory{
		uid: uid,
		members: []apis.MemberDesc{
			{Kind: apis.PropertyMember, Name: "Count", TypeUID: anyval.Int32UID},
		},
	}
}

func (f *gadgetFactory) ClassInfo() apis.ClassInfo {
	return apis.ClassInfo{UID: f.uid, Name: "gadget", Members: f.members}
}
func (f *gadgetFactory) InstanceSize() uintptr  { return unsafe.Sizeof(gadget{}) }
func (f *gadgetFactory) InstanceAlign() uintptr { return unsafe.Alignof(gadget{}) }

func (f *gadgetFactory) CreateInstance() (apis.IObject, error) {
	g := &gadget{}
	g.AddInterface(f.uid, func() apis.IInterface { return g })
	return g, nil
}

func (f *gadgetFactory) ConstructInPlace(slot unsafe.Pointer, cb apis.ControlBlockHandle, _ apis.ConstructFlags) apis.IObject {
	g := (*gadget)(slot)
	*g = gadget{}
	g.AddInterface(f.uid, func() apis.IInterface { return g })
	g.SetControlBlock(cb)
	return g
}

func (f *gadgetFactory) DestroyInPlace(_ unsafe.Pointer) {}
