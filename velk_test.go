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
	"runtime"
	"sync"
	"testing"
	"unsafe"

	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/objectkernel"
	"github.com/ljaaskela/strata/rtconfig"
	"github.com/ljaaskela/strata/scheduler"
	"github.com/ljaaskela/strata/typeregistry"
)

// ---------------------- Test fixtures ----------------------

type widget struct {
	objectkernel.Core
}

type widgetFactory struct {
	uid apis.UID
}

func (f *widgetFactory) ClassInfo() apis.ClassInfo {
	return apis.ClassInfo{UID: f.uid, Name: "widget"}
}
func (f *widgetFactory) InstanceSize() uintptr  { return unsafe.Sizeof(widget{}) }
func (f *widgetFactory) InstanceAlign() uintptr { return unsafe.Alignof(widget{}) }
func (f *widgetFactory) CreateInstance() (apis.IObject, error) {
	w := &widget{}
	w.AddInterface(f.uid, func() apis.IInterface { return w })
	return w, nil
}
func (f *widgetFactory) ConstructInPlace(slot unsafe.Pointer, cb apis.ControlBlockHandle, _ apis.ConstructFlags) apis.IObject {
	w := (*widget)(slot)
	*w = widget{}
	w.AddInterface(f.uid, func() apis.IInterface { return w })
	w.SetControlBlock(cb)
	return w
}
func (f *widgetFactory) DestroyInPlace(_ unsafe.Pointer) {}

// reset restores a clean, unpinned snapshot built from a fresh registry and
// scheduler, so tests don't leak state into one another.
func reset(t *testing.T) {
	t.Helper()
	cfg := rtconfig.DefaultConfig()
	sched := scheduler.New()
	reg := typeregistry.Build(sched.QueueTask)
	SetAll(cfg, reg, sched)
	UnpinRegistry()
	UnpinScheduler()
}

// ---------------------- Tests ----------------------

func TestRegisterAndCreate(t *testing.T) {
	reset(t)
	factory := &widgetFactory{uid: apis.UID{0x01}}

	if rv := RegisterType(factory); rv != apis.Success {
		t.Fatalf("RegisterType() = %v, want Success", rv)
	}
	obj := Create(factory.uid)
	if obj == nil {
		t.Fatal("Create() = nil for a registered class")
	}
	if _, ok := obj.(*widget); !ok {
		t.Fatalf("Create() returned %T, want *widget", obj)
	}
}

func TestQueueTaskAndUpdate(t *testing.T) {
	reset(t)
	var ran bool
	QueueTask(func() { ran = true })
	if ran {
		t.Fatal("task ran before Update")
	}
	Update()
	if !ran {
		t.Fatal("task did not run after Update")
	}
}

func TestSetConfig_RebuildsUnpinnedLayers(t *testing.T) {
	reset(t)

	s1Reg := Registry()
	s1Sched := Scheduler()

	SetConfig(rtconfig.New(rtconfig.WithHivePageSize(128)))

	if Registry() == s1Reg {
		t.Fatal("registry was not rebuilt on SetConfig (unpinned)")
	}
	if Scheduler() == s1Sched {
		t.Fatal("scheduler was not rebuilt on SetConfig (unpinned)")
	}
}

func TestSetRegistry_PinsRegistry(t *testing.T) {
	reset(t)

	customSched := scheduler.New()
	customReg := typeregistry.Build(customSched.QueueTask)
	SetRegistry(customReg)

	schedBefore := Scheduler()
	SetConfig(rtconfig.New(rtconfig.WithHivePageSize(64)))

	if Registry() != customReg {
		t.Fatal("pinned registry was rebuilt unexpectedly")
	}
	if Scheduler() == schedBefore {
		t.Fatal("scheduler was not rebuilt when cfg changed and it was not pinned")
	}
}

func TestSetScheduler_PinsScheduler(t *testing.T) {
	reset(t)

	customSched := scheduler.New()
	SetScheduler(customSched)

	regBefore := Registry()
	SetConfig(rtconfig.New(rtconfig.WithHivePageSize(32)))

	if Scheduler() != customSched {
		t.Fatal("pinned scheduler was rebuilt unexpectedly")
	}
	if Registry() == regBefore {
		t.Fatal("registry was not rebuilt when cfg changed and it was not pinned")
	}
}

func TestUnpin_AllowsRebuildAfter(t *testing.T) {
	reset(t)

	SetRegistry(Registry())
	SetScheduler(Scheduler())

	reg1 := Registry()
	sched1 := Scheduler()
	SetConfig(rtconfig.New(rtconfig.WithHivePageSize(96)))
	if Registry() != reg1 || Scheduler() != sched1 {
		t.Fatal("pinned layers should not rebuild on SetConfig")
	}

	UnpinRegistry()
	UnpinScheduler()
	SetConfig(rtconfig.New(rtconfig.WithHivePageSize(48)))
	if Registry() == reg1 {
		t.Fatal("registry should rebuild after UnpinRegistry+SetConfig")
	}
	if Scheduler() == sched1 {
		t.Fatal("scheduler should rebuild after UnpinScheduler+SetConfig")
	}
}

func TestInstance_ForwardsToGlobalState(t *testing.T) {
	reset(t)
	factory := &widgetFactory{uid: apis.UID{0x02}}
	_ = RegisterType(factory)

	inst := Instance()
	if inst.TypeRegistry() != Registry() {
		t.Fatal("Instance().TypeRegistry() does not match Registry()")
	}

	var ran bool
	inst.QueueTask(func() { ran = true })
	inst.Update()
	if !ran {
		t.Fatal("Instance().QueueTask/Update did not run the task")
	}
}

func TestCreate_ConcurrentWithSetConfig(t *testing.T) {
	reset(t)
	factory := &widgetFactory{uid: apis.UID{0x03}}
	_ = RegisterType(factory)

	done := make(chan struct{})
	var wg sync.WaitGroup

	readers := runtime.GOMAXPROCS(0) * 4
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = Create(factory.uid)
				QueueTask(func() {})
			}
		}()
	}

	go func() {
		for i := 0; i < 20; i++ {
			SetConfig(rtconfig.New(rtconfig.WithHivePageSize(16 + i)))
		}
		close(done)
	}()

	wg.Wait()
	<-done
}

var _ apis.IVelk = Instance()
