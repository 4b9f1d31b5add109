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

// Package metadata implements the per-instance lazy mirror of a class's
// static member table: Container materialises a Property or Function on
// first lookup from its apis.MemberDesc and caches it for every subsequent
// lookup of the same name.
package metadata

import (
	"sync"

	"github.com/ljaaskela/strata/apis"
	"github.com/ljaaskela/strata/objectkernel"
)

var containerUID = apis.UID{0x6d, 0x65, 0x74, 0x61} // "meta" — internal, never registered with a class.

// PropertyFactory builds a Property from its static descriptor, decoding
// desc.DefaultBytes as the property's initial committed value.
type PropertyFactory func(desc apis.MemberDesc) apis.IProperty

// FunctionFactory builds a Function (or Event) from its static descriptor.
type FunctionFactory func(desc apis.MemberDesc) apis.IFunction

// Container is the concrete apis.IMetadata implementation.
type Container struct {
	objectkernel.Core

	mu         sync.Mutex
	byName     map[string]apis.MemberDesc
	order      []apis.MemberDesc
	properties map[string]apis.IProperty
	events     map[string]apis.IEvent
	functions  map[string]apis.IFunction

	newProperty PropertyFactory
	newFunction FunctionFactory
}

// NewContainer seats a Container around members (the class's flattened
// static table). newProperty/newFunction are invoked at most once per
// member name, on first access.
func NewContainer(members []apis.MemberDesc, newProperty PropertyFactory, newFunction FunctionFactory) *Container {
	c := &Container{
		order:       append([]apis.MemberDesc(nil), members...),
		byName:      make(map[string]apis.MemberDesc, len(members)),
		properties:  make(map[string]apis.IProperty),
		events:      make(map[string]apis.IEvent),
		functions:   make(map[string]apis.IFunction),
		newProperty: newProperty,
		newFunction: newFunction,
	}
	for _, m := range members {
		c.byName[m.Name] = m
	}
	c.AddInterface(containerUID, func() apis.IInterface { return c })
	return c
}

// StaticMetadata implements apis.IMetadata.
func (c *Container) StaticMetadata() []apis.MemberDesc { return c.order }

// GetProperty implements apis.IMetadata.
func (c *Container) GetProperty(name string) apis.IProperty {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.properties[name]; ok {
		return p
	}
	desc, ok := c.byName[name]
	if !ok || desc.Kind != apis.PropertyMember {
		return nil
	}
	p := c.newProperty(desc)
	c.properties[name] = p
	return p
}

// GetEvent implements apis.IMetadata.
func (c *Container) GetEvent(name string) apis.IEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.events[name]; ok {
		return e
	}
	desc, ok := c.byName[name]
	if !ok || desc.Kind != apis.EventMember {
		return nil
	}
	e := c.newFunction(desc)
	c.events[name] = e
	return e
}

// GetFunction implements apis.IMetadata.
func (c *Container) GetFunction(name string) apis.IFunction {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.functions[name]; ok {
		return f
	}
	desc, ok := c.byName[name]
	if !ok || desc.Kind != apis.FunctionMember {
		return nil
	}
	f := c.newFunction(desc)
	c.functions[name] = f
	return f
}

// Notify implements apis.IMetadata, firing a Changed event on the named
// property's on-changed Event without going through SetValue (used by the
// typed-state writer so a WriteState block notifies exactly once).
func (c *Container) Notify(kind apis.MemberKind, name string, n apis.Notification) {
	if kind != apis.PropertyMember {
		return
	}
	p := c.GetProperty(name)
	if p == nil {
		return
	}
	p.OnChanged().Invoke(apis.FnArgs{p.GetValue()}, apis.Immediate)
}
