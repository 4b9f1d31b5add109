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

package rtconfig_test

import (
	"testing"

	"github.com/ljaaskela/strata/rtconfig"
)

func TestDefaultConfigValues(t *testing.T) {
	got := rtconfig.DefaultConfig()

	if got.BlockPoolCapacity != rtconfig.DefaultBlockPoolCapacity {
		t.Fatalf("BlockPoolCapacity = %d, want %d", got.BlockPoolCapacity, rtconfig.DefaultBlockPoolCapacity)
	}
	if got.HivePageSize != rtconfig.DefaultHivePageSize {
		t.Fatalf("HivePageSize = %d, want %d", got.HivePageSize, rtconfig.DefaultHivePageSize)
	}
	if got.SchedulerQueueCapacity != rtconfig.DefaultSchedulerQueueCapacity {
		t.Fatalf("SchedulerQueueCapacity = %d, want %d", got.SchedulerQueueCapacity, rtconfig.DefaultSchedulerQueueCapacity)
	}
}

func TestNew_NoOptions_EqualsDefault(t *testing.T) {
	def := rtconfig.DefaultConfig()
	got := rtconfig.New()
	if got != def {
		t.Fatalf("New() = %+v, want default %+v", got, def)
	}
}

func TestWithBlockPoolCapacity(t *testing.T) {
	c := rtconfig.New(rtconfig.WithBlockPoolCapacity(64))
	if c.BlockPoolCapacity != 64 {
		t.Fatalf("BlockPoolCapacity = %d, want 64", c.BlockPoolCapacity)
	}
}

func TestWithBlockPoolCapacity_Negative_ResetsToDefault(t *testing.T) {
	c := rtconfig.New(rtconfig.WithBlockPoolCapacity(-1))
	if c.BlockPoolCapacity != rtconfig.DefaultBlockPoolCapacity {
		t.Fatalf("BlockPoolCapacity = %d, want default %d", c.BlockPoolCapacity, rtconfig.DefaultBlockPoolCapacity)
	}
}

func TestWithHivePageSize_Positive(t *testing.T) {
	c := rtconfig.New(rtconfig.WithHivePageSize(128))
	if c.HivePageSize != 128 {
		t.Fatalf("HivePageSize = %d, want 128", c.HivePageSize)
	}
}

func TestWithHivePageSize_NonPositive_ResetsToDefault(t *testing.T) {
	c := rtconfig.New(rtconfig.WithHivePageSize(0))
	if c.HivePageSize != rtconfig.DefaultHivePageSize {
		t.Fatalf("HivePageSize = %d, want default %d", c.HivePageSize, rtconfig.DefaultHivePageSize)
	}
}

func TestWithSchedulerQueueCapacity(t *testing.T) {
	c := rtconfig.New(rtconfig.WithSchedulerQueueCapacity(32))
	if c.SchedulerQueueCapacity != 32 {
		t.Fatalf("SchedulerQueueCapacity = %d, want 32", c.SchedulerQueueCapacity)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := rtconfig.New(
		rtconfig.WithBlockPoolCapacity(10),
		rtconfig.WithBlockPoolCapacity(20),
		rtconfig.WithHivePageSize(4),
		rtconfig.WithHivePageSize(8),
		rtconfig.WithSchedulerQueueCapacity(1),
		rtconfig.WithSchedulerQueueCapacity(2),
	)

	if c.BlockPoolCapacity != 20 {
		t.Errorf("BlockPoolCapacity = %d, want 20 (last option wins)", c.BlockPoolCapacity)
	}
	if c.HivePageSize != 8 {
		t.Errorf("HivePageSize = %d, want 8 (last option wins)", c.HivePageSize)
	}
	if c.SchedulerQueueCapacity != 2 {
		t.Errorf("SchedulerQueueCapacity = %d, want 2 (last option wins)", c.SchedulerQueueCapacity)
	}
}

func TestNew_Guardrails_BlockPoolCapacityZeroAllowed(t *testing.T) {
	// The constructor only resets negative values. Zero is allowed by design.
	c := rtconfig.New(rtconfig.WithBlockPoolCapacity(0))
	if c.BlockPoolCapacity != 0 {
		t.Fatalf("BlockPoolCapacity = %d, want 0 (zero is allowed)", c.BlockPoolCapacity)
	}
}
