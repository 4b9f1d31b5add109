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

package hive

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/objectkernel"
	"github.com/ljaaskela/strata/refcount"
)

var hiveUID = apis.UID{0x68, 0x69, 0x76, 0x65} // "hive" — internal, never registered with a class.

func errAlignmentTooWide(align uintptr) error {
	return fmt.Errorf("hive: element alignment %d exceeds the %d-byte alignment a []byte-backed page can guarantee", align, maxSupportedAlign)
}

// location records where a live element's storage lives (which page, and
// which slot within it) and the Hive's own strong reference to it, the one
// Add seats and only Remove releases.
type location struct {
	page   *page
	slot   int
	strong refcount.Strong[apis.IObject]
}

// Hive is the concrete apis.IHive implementation: a growing set of pages,
// each a fixed-count slab of fixed-size slots, all sized for one instance
// of factory's class.
//
// Every element a Hive seats is backed by a control block the Hive itself
// builds and adopts into the instance via ConstructInPlace, with a destroy
// hook that returns the slot to this Hive rather than releasing it to the
// Go allocator. Remove is an explicit call, not an automatic consequence
// of an instance's strong count reaching zero: Add hands the caller a
// second strong reference on top of the one the Hive keeps for itself, so
// an object removed while external references remain transitions to
// Zombie and is only actually reclaimed once the last of those references
// is released.
type Hive struct {
	objectkernel.Core

	elementUID apis.UID
	factory    apis.IObjectFactory
	pageSize   int

	mu    sync.Mutex
	pages []*page
	index map[apis.IObject]location
	count int
}

// New seats an empty Hive for factory's class, with pageSize elements per
// page.
func New(elementUID apis.UID, factory apis.IObjectFactory, pageSize int) *Hive {
	if pageSize <= 0 {
		pageSize = 64
	}
	h := &Hive{
		elementUID: elementUID,
		factory:    factory,
		pageSize:   pageSize,
		index:      make(map[apis.IObject]location),
	}
	h.AddInterface(hiveUID, func() apis.IInterface { return h })
	return h
}

// ElementClassUID implements apis.IHive.
func (h *Hive) ElementClassUID() apis.UID { return h.elementUID }

// Len implements apis.IHive.
func (h *Hive) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// Add implements apis.IHive: constructs a new element, growing the hive by
// one page if no existing page has a free slot.
//
// A control block is seated before the factory ever runs (its destroy hook
// must already be wired into ConstructInPlace's cb argument) with strong
// count 1, representing the Hive's own reference; AdoptObject binds the
// real instance into it once constructed. Ref bumps the count to 2 before
// Add returns, handing the caller a second, independent strong reference:
// the Hive keeps one, the caller keeps one, exactly as Remove expects.
func (h *Hive) Add() (apis.IObject, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pg, slot, err := h.acquireSlot()
	if err != nil {
		return nil, err
	}

	strong := refcount.NewStrong[apis.IObject](nil, h.reclaim(pg, slot))
	cb := strong.ControlBlock()
	obj := h.factory.ConstructInPlace(pg.slotPtr(slot), cb, apis.HiveManaged)
	cb.AdoptObject(obj)
	obj.Ref()

	pg.states[slot] = Active
	pg.free--
	h.index[obj] = location{page: pg, slot: slot, strong: strong}
	h.count++
	return obj, nil
}

// reclaim builds the destroy hook a seated control block runs when its
// strong count finally reaches zero: it runs the factory's destructor and
// returns the slot to pg's free list. Captured by closure rather than
// looked up through h.index, since Remove deletes the index entry before
// this ever runs (possibly much later, from whichever goroutine releases
// the object's last external reference).
func (h *Hive) reclaim(pg *page, slot int) func(*refcount.ControlBlock) {
	return func(*refcount.ControlBlock) {
		h.factory.DestroyInPlace(pg.slotPtr(slot))
		h.mu.Lock()
		pg.states[slot] = Free
		pg.free++
		h.mu.Unlock()
	}
}

// acquireSlot finds a free slot in an existing page, or allocates a new
// page when every existing page is full.
func (h *Hive) acquireSlot() (*page, int, error) {
	for _, pg := range h.pages {
		if slot, ok := pg.findFree(); ok {
			return pg, slot, nil
		}
	}

	pg, err := newPage(h.pageSize, h.factory.InstanceSize(), h.factory.InstanceAlign())
	if err != nil {
		return nil, 0, err
	}
	h.pages = append(h.pages, pg)
	slot, _ := pg.findFree()
	return pg, slot, nil
}

// Remove implements apis.IHive. It transitions the slot Active → Zombie
// and releases the Hive's own strong reference; the slot is only actually
// reclaimed (Zombie → Free) once every external strong reference to obj
// has also been released, which may happen synchronously below or much
// later from another goroutine entirely.
func (h *Hive) Remove(obj apis.IObject) apis.ReturnValue {
	h.mu.Lock()
	loc, ok := h.index[obj]
	if !ok || loc.page.states[loc.slot] != Active {
		h.mu.Unlock()
		return apis.Fail
	}

	loc.page.states[loc.slot] = Zombie
	delete(h.index, obj)
	h.count--
	h.mu.Unlock()

	// Release outside h.mu: if no external reference remains, this runs
	// the reclaim destroy hook synchronously, which itself takes h.mu.
	loc.strong.Release()
	return apis.Success
}

// Contains implements apis.IHive.
func (h *Hive) Contains(obj apis.IObject) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.index[obj]
	return ok
}

// ForEach implements apis.IHive. It visits a snapshot of the elements live
// at call time, in page, then slot order; elements added or removed during
// the traversal are not observed.
func (h *Hive) ForEach(visitor apis.VisitorFn) {
	for _, obj := range h.snapshot() {
		if !visitor(obj) {
			return
		}
	}
}

// ForEachParallel visits every live element concurrently, fanning out
// with an errgroup.Group rather than the sequential order ForEach
// guarantees. visitor errors are collected and returned joined; a single
// failing visitor does not stop the others from running.
func (h *Hive) ForEachParallel(visitor func(obj apis.IObject) error) error {
	var g errgroup.Group
	for _, obj := range h.snapshot() {
		obj := obj
		g.Go(func() error { return visitor(obj) })
	}
	return g.Wait()
}

func (h *Hive) snapshot() []apis.IObject {
	h.mu.Lock()
	defer h.mu.Unlock()
	pageIdx := make(map[*page]int, len(h.pages))
	for i, pg := range h.pages {
		pageIdx[pg] = i
	}
	out := make([]apis.IObject, 0, len(h.index))
	for obj := range h.index {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := h.index[out[i]], h.index[out[j]]
		if pageIdx[a.page] != pageIdx[b.page] {
			return pageIdx[a.page] < pageIdx[b.page]
		}
		return a.slot < b.slot
	})
	return out
}
