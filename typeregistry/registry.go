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

// Package typeregistry implements apis.IRegistry: a UID-keyed factory
// table plus the ordered post-construction pipeline every freshly built
// instance runs through before it is handed back to a caller.
package typeregistry

import "sync"

import "github.com/ljaaskela/strata/apis"

// Registry is the concrete apis.IRegistry implementation, a sync.Map-style
// idempotent table: registering a class under a UID already in use
// replaces the previous factory, and instances already constructed under
// the old one are unaffected. RegisterType/UnregisterType/Create/
// GetClassInfo/Factory are all safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[apis.UID]apis.IObjectFactory
	pipeline  *Pipeline
}

// New returns an empty Registry running steps, in order, against every
// instance Create constructs.
func New(steps ...apis.CreationStrategy) *Registry {
	return &Registry{
		factories: make(map[apis.UID]apis.IObjectFactory),
		pipeline:  NewPipeline(steps...),
	}
}

// RegisterType implements apis.IRegistry.
func (r *Registry) RegisterType(factory apis.IObjectFactory) apis.ReturnValue {
	if factory == nil {
		return apis.InvalidArgument
	}
	r.mu.Lock()
	r.factories[factory.ClassInfo().UID] = factory
	r.mu.Unlock()
	return apis.Success
}

// UnregisterType implements apis.IRegistry.
func (r *Registry) UnregisterType(uid apis.UID) apis.ReturnValue {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[uid]; !ok {
		return apis.NothingToDo
	}
	delete(r.factories, uid)
	return apis.Success
}

// Create implements apis.IRegistry: constructs a new instance via its
// registered factory, then runs the pipeline against it before returning
// it to the caller. Returns nil if uid is not registered or the pipeline
// aborts construction.
func (r *Registry) Create(uid apis.UID) apis.IObject {
	factory, ok := r.Factory(uid)
	if !ok {
		return nil
	}
	obj, err := factory.CreateInstance()
	if err != nil || obj == nil {
		return nil
	}
	if rv := r.pipeline.Apply(obj, factory); !rv.Ok() {
		return nil
	}
	return obj
}

// GetClassInfo implements apis.IRegistry.
func (r *Registry) GetClassInfo(uid apis.UID) (apis.ClassInfo, bool) {
	factory, ok := r.Factory(uid)
	if !ok {
		return apis.ClassInfo{}, false
	}
	return factory.ClassInfo(), true
}

// Factory implements apis.IRegistry.
func (r *Registry) Factory(uid apis.UID) (apis.IObjectFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[uid]
	return factory, ok
}

// Pipeline returns the post-construction pipeline Create runs on every
// new instance.
func (r *Registry) Pipeline() *Pipeline { return r.pipeline }
