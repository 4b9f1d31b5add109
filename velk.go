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

package strata

import (
	"sync"
	"sync/atomic"

	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/refcount"
	"github.com/ljaaskela/strata/rtconfig"
	"github.com/ljaaskela/strata/scheduler"
	"github.com/ljaaskela/strata/typeregistry"
)

// init initializes the global runtime state.
func init() {
	// Initialize state with default cfg, sched, and reg.
	cfg := rtconfig.DefaultConfig()
	refcount.Configure(cfg.BlockPoolCapacity)
	sched := scheduler.NewWithCapacity(cfg.SchedulerQueueCapacity)
	reg := typeregistry.Build(sched.QueueTask)
	st.Store(&state{cfg: cfg, sched: sched, reg: reg})
}

// Create constructs a new instance of uid via the global registry's
// registered factory. Returns nil if uid is not registered.
// This is a convenience wrapper around the global registry.
func Create(uid apis.UID) apis.IObject {
	return st.Load().reg.Create(uid)
}

// RegisterType associates factory with its ClassInfo.UID in the global
// registry. This is a convenience wrapper around the global registry.
func RegisterType(factory apis.IObjectFactory) apis.ReturnValue {
	return st.Load().reg.RegisterType(factory)
}

// QueueTask enqueues fn to run on the next Update call, in FIFO order
// relative to every other task queued since the previous Update.
// This is a convenience wrapper around the global scheduler.
func QueueTask(fn func()) {
	st.Load().sched.QueueTask(fn)
}

// Update drains every task queued since the previous call, in the order
// they were queued. Not safe to call concurrently with itself.
// This is a convenience wrapper around the global scheduler.
func Update() {
	st.Load().sched.Update()
}

// SetAll explicitly sets all global runtime state components.
//
// Nil/zero arguments leave the corresponding component unchanged, except
// cfg which is always applied (a zero rtconfig.Config is meaningless, so
// callers should pass rtconfig.DefaultConfig() when they mean "default").
//
// This is a convenience wrapper around the global state.
func SetAll(cfg rtconfig.Config, reg apis.IRegistry, sched *scheduler.Scheduler) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Scheduler
	nsched := sched
	npsched := false
	if nsched == nil {
		nsched = old.sched
	} else {
		npsched = true
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = old.reg
	} else {
		npreg = true
	}

	refcount.Configure(cfg.BlockPoolCapacity)

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    cfg,
			reg:    nreg,
			sched:  nsched,
			preg:   npreg,
			psched: npsched,
		},
	)
}

// Config returns the global runtime configuration.
func Config() rtconfig.Config {
	return st.Load().cfg
}

// SetConfig sets the global runtime configuration to cfg.
// It rebuilds the global scheduler and registry using the new
// configuration, unless they are pinned.
// This is a convenience wrapper around the global state.
func SetConfig(cfg rtconfig.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	refcount.Configure(cfg.BlockPoolCapacity)

	// Build new nsched and nreg based on the new cfg and old state.
	nsched := old.sched
	if !old.psched {
		nsched = scheduler.NewWithCapacity(cfg.SchedulerQueueCapacity)
	}
	nreg := old.reg
	if !old.preg {
		nreg = typeregistry.Build(nsched.QueueTask)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    cfg,
			reg:    nreg,
			sched:  nsched,
			preg:   old.preg,
			psched: old.psched,
		},
	)
}

// Registry returns the global runtime registry.
func Registry() apis.IRegistry {
	return st.Load().reg
}

// SetRegistry sets the global runtime registry to reg, and pins it:
// further calls to SetConfig will not rebuild it until UnpinRegistry.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.IRegistry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			reg:    reg,
			sched:  old.sched,
			preg:   true,
			psched: old.psched,
		},
	)
}

// Scheduler returns the global runtime scheduler.
func Scheduler() *scheduler.Scheduler {
	return st.Load().sched
}

// SetScheduler sets the global runtime scheduler to sched, and pins it:
// further calls to SetConfig will not rebuild it until UnpinScheduler.
// This is a convenience wrapper around the global state.
func SetScheduler(sched *scheduler.Scheduler) {
	if sched == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			reg:    old.reg,
			sched:  sched,
			preg:   old.preg,
			psched: true,
		},
	)
}

// IsRegistryPinned returns whether the global registry is pinned
// (immune to SetConfig rebuilds).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry makes the global registry rebuildable by SetConfig again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:    old.cfg,
			reg:    old.reg,
			sched:  old.sched,
			preg:   false,
			psched: old.psched,
		},
	)
}

// IsSchedulerPinned returns whether the global scheduler is pinned
// (immune to SetConfig rebuilds).
func IsSchedulerPinned() bool {
	return st.Load().psched
}

// UnpinScheduler makes the global scheduler rebuildable by SetConfig again.
func UnpinScheduler() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:    old.cfg,
			reg:    old.reg,
			sched:  old.sched,
			preg:   old.preg,
			psched: false,
		},
	)
}

// Instance returns the package's functionality as an apis.IVelk value, for
// code that wants to depend on the interface rather than the package-level
// functions directly.
func Instance() apis.IVelk {
	return instance{}
}

// instance is a zero-size apis.IVelk that forwards every call to the
// package-level functions, which in turn always read the latest published
// snapshot. It carries no state of its own so that Instance() never goes
// stale relative to SetConfig/SetRegistry/SetScheduler.
type instance struct{}

func (instance) TypeRegistry() apis.IRegistry { return Registry() }
func (instance) QueueTask(fn func())          { QueueTask(fn) }
func (instance) Update()                      { Update() }

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global runtime state.
var st atomic.Pointer[state]

// state is the global runtime state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global runtime configuration.
	cfg rtconfig.Config
	// reg is the global type registry.
	reg apis.IRegistry
	// sched is the global deferred-task scheduler.
	sched *scheduler.Scheduler
	// preg indicates whether reg is pinned (immune to SetConfig rebuilds).
	preg bool
	// psched indicates whether sched is pinned (immune to SetConfig
	// rebuilds).
	psched bool
}
