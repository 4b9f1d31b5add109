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

// NewSelfWeakStrategy returns the apis.CreationStrategy that installs an
// object's own self-weak handle, letting it later hand out fresh strong
// references to itself without re-locating its control block. It must run
// after NewControlBlockStrategy, which is the only step that knows how to
// reach obj's control block.
func NewSelfWeakStrategy() apis.CreationStrategy {
	return selfWeakStrategy{}
}

type selfWeakStrategy struct{}

func (selfWeakStrategy) Apply(obj apis.IObject, _ apis.IObjectFactory) apis.ReturnValue {
	sharer, ok := obj.(apis.ISharedFromObject)
	if !ok {
		return apis.NothingToDo
	}
	if sharer.GetSelf() != nil {
		return apis.NothingToDo
	}

	holder, ok := obj.(interface {
		ControlBlock() objectkernel.ControlBlockHandle
	})
	if !ok {
		// obj has no Core to expose a control block; nothing to weaken.
		return apis.NothingToDo
	}
	cb, ok := holder.ControlBlock().(*refcount.ControlBlock)
	if !ok || cb == nil {
		// NewControlBlockStrategy did not run, or obj declined a block.
		return apis.NothingToDo
	}

	weak := refcount.StrongFromBlock[apis.IObject](cb, obj).Weaken()
	sharer.SetSelf(weak)
	return apis.Success
}
