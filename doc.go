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

// Package strata provides a global, process-wide component object runtime.
//
// strata turns a registered apis.IObjectFactory into live apis.IObject
// instances: UID-identified interfaces, intrusive strong/weak refcounting,
// reactive Property/Event/Function members, and a single-threaded
// deferred-task queue that every Property set and Function/Event
// invocation runs through. Examples: a scene graph node's Position
// property, a widget's Clicked event, a save-game system's SaveRequested
// function.
//
// # Design
//
// The core of strata is a read-mostly global snapshot (state). The
// snapshot holds three things:
//
//   - Config: the runtime's tunables (block-pool capacity, hive page
//     geometry, scheduler queue headroom). See package rtconfig.
//
//   - Registry: the process-wide apis.IRegistry mapping class UIDs to
//     registered factories. This is how application code installs new
//     component types (RegisterType) and constructs instances of them
//     (Create). The registry can be written to at runtime.
//
//   - Scheduler: the deferred-task FIFO queue every reactive member
//     defers its side effects into, drained once per Update call.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state
// and atomically swap it in.
//
// This means strata lookups are lock-free on the hot path:
//
//	obj := strata.Create(someUID)
//	strata.QueueTask(func() { obj.GetInterface(ifaceUID) })
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Create(uid apis.UID) apis.IObject
//     RegisterType(factory apis.IObjectFactory) apis.ReturnValue
//     QueueTask(fn func())
//     Update()
//     Registry() apis.IRegistry
//     Config() rtconfig.Config
//
//     These are safe for concurrent use without additional locking
//     (except Update, which must run on a single, consistent goroutine,
//     exactly like scheduler.Scheduler.Update).
//
//  2. Mutation helpers:
//
//     SetConfig(cfg rtconfig.Config)
//     SetRegistry(reg apis.IRegistry)
//     SetScheduler(sched *scheduler.Scheduler)
//     UnpinRegistry()
//     UnpinScheduler()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Registry / Scheduler as needed),
//     and then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects block-pool and queue sizing (HivePageSize is not
//     applied by this package). Calling SetConfig()
//     may trigger a rebuild of Registry and/or Scheduler, unless they
//     are explicitly "pinned".
//
//     - SetRegistry() / SetScheduler() directly overwrite the current
//     Registry / Scheduler in the snapshot and "pin" them. Once a layer
//     is pinned, strata will stop rebuilding that layer automatically
//     until you call UnpinRegistry()/UnpinScheduler().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Config, Registry, Scheduler in one shot. This is mainly used by
//     tests to get a clean deterministic state between test cases.
//
//  3. Introspection:
//
//     Instance() apis.IVelk
//
//     Returns the package's functionality as a value, for code that
//     wants to depend on the apis.IVelk interface rather than the
//     package-level functions directly.
//
// # Concurrency model
//
// Reads (Create, RegisterType, QueueTask, Registry, Config) load the
// current *state atomically and never take the build lock; Create,
// RegisterType and QueueTask then take the registry's or scheduler's own
// short internal lock. Update is not lock-free either: it drains the scheduler's queue and must not run
// concurrently with itself, exactly like scheduler.Scheduler.Update.
//
// Writes (SetConfig, SetRegistry, SetScheduler, etc.) take a short build
// mutex, assemble a brand-new state struct, and then publish it via an
// atomic pointer swap. This gives the calling binary a predictable "last
// write wins" behavior without forcing per-lookup locking.
//
// # Pinning
//
// strata supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetScheduler(sched), that Scheduler is pinned and
//     will not be rebuilt automatically until UnpinScheduler().
//
// Pinning exists for advanced scenarios where you want full control over
// one layer while still letting other layers evolve: for example, you
// may lock a custom Scheduler (say, one that also traces task timing)
// while still allowing the rest of the runtime's Config to change.
//
// # Scope
//
// strata is intentionally small. It does not try to be a general object
// graph database or ECS. It only solves one job:
//
//	"Given a registered class UID, construct a live, ref-counted,
//	 reflectable object, and run its reactive members through one
//	 deterministic deferred-task queue."
//
// Everything else (serialization, networking, rendering) belongs to
// higher layers.
package strata
