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
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/ljaaskela/strata/apis"
)

// TestRegistry_ConcurrentCreate hammers Registry.Create, which runs the
// full standard pipeline (control block, self-weak, metadata) for every
// call, to verify none of the three steps race against each other across
// distinct instances.
func TestRegistry_ConcurrentCreate(t *testing.T) {
	factory := newGadgetFactoryWithCounter(apis.UID{0x08})
	reg := Build(nil)
	if rv := reg.RegisterType(factory); rv != apis.Success {
		t.Fatalf("RegisterType: %v", rv)
	}

	var g errgroup.Group
	workers := runtime.GOMAXPROCS(0) * 4
	const perWorker = 200

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				obj := reg.Create(factory.uid)
				if obj == nil {
					t.Error("Create() returned nil")
					return nil
				}
				gd := obj.(*gadget)
				if gd.Metadata() == nil {
					t.Error("Metadata() = nil after Create()")
					return nil
				}
				if gd.GetSelf() == nil {
					t.Error("GetSelf() = nil after Create()")
					return nil
				}
				obj.Ref()
				obj.Unref()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("g.Wait(): %v", err)
	}
}
