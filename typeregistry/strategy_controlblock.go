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
	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/objectkernel"
	"github.com/ljaaskela/strata/refcount"
)

// NewControlBlockStrategy returns the apis.CreationStrategy that must run
// first in every pipeline: it seats a fresh refcount.ControlBlock around
// obj and wires it into obj's embedded objectkernel.Core, so Ref/Unref
// delegate to real strong/weak counting instead of the no-op defaults Core
// falls back to when unwired.
//
// Registry.Create always allocates obj on the heap (via
// IObjectFactory.CreateInstance), so the seated block's destroy hook is
// nil: when the last strong reference is released, obj is simply dropped
// for the ordinary Go garbage collector to reclaim. A Hive, by contrast,
// constructs its elements directly through ConstructInPlace and manages
// their lifetime itself; it does not run a Registry's pipeline over them.
func NewControlBlockStrategy() apis.CreationStrategy {
	return controlBlockStrategy{}
}

type controlBlockStrategy struct{}

func (controlBlockStrategy) Apply(obj apis.IObject, _ apis.IObjectFactory) apis.ReturnValue {
	wcb, ok := obj.(objectkernel.WithControlBlock)
	if !ok {
		return apis.NothingToDo
	}
	strong := refcount.NewStrong[apis.IObject](obj, nil)
	wcb.SetControlBlock(strong.ControlBlock())
	return apis.Success
}
