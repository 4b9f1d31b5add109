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

// Package hive implements a fixed-element-type slab allocator: a Hive owns
// a growing set of fixed-size pages, each holding a fixed number of slots
// sized for one instance of the hive's element class.
package hive

import (
	"fmt"
	"strings"
)

// SlotState tracks the lifecycle of one slot within a page.
//
// A slot starts Free, becomes Active when Add constructs an instance into
// it, and becomes Zombie when Remove takes the instance out of the hive.
// It returns to Free when the instance's last strong reference is
// released and the destroy hook runs; with no external reference left,
// that happens inside Remove itself.
type SlotState int

const (
	// Free means the slot holds no constructed instance and is available
	// to Add.
	Free SlotState = iota
	// Active means the slot holds a live, constructed instance.
	Active
	// Zombie means the slot's instance has been removed from the hive but
	// is still strongly referenced, so it has not been destroyed yet.
	Zombie
)

// String returns "Free", "Active", "Zombie", or "Unknown(<n>)" for any
// other value; it never panics.
func (s SlotState) String() string {
	switch s {
	case Free:
		return "Free"
	case Active:
		return "Active"
	case Zombie:
		return "Zombie"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Parse converts a case-insensitive token into a SlotState.
func Parse(s string) (SlotState, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FREE":
		return Free, nil
	case "ACTIVE":
		return Active, nil
	case "ZOMBIE":
		return Zombie, nil
	default:
		return Free, fmt.Errorf("hive: unknown slot state %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) SlotState {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText implements encoding.TextMarshaler.
func (s SlotState) MarshalText() ([]byte, error) {
	switch s {
	case Free, Active, Zombie:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("hive: cannot marshal unknown slot state %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SlotState) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
