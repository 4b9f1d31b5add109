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

// Package rtconfig holds the runtime's tunables: how many free control
// blocks the refcount pool parks before letting the garbage collector take
// them, how many elements a Hive page holds, and how much headroom the
// scheduler's pending queue preallocates. Config is assembled once, at
// startup, via functional options, and treated as immutable afterward.
package rtconfig

const (
	// DefaultBlockPoolCapacity represents the default for BlockPoolCapacity.
	// Mirrors refcount's own internal pool bound.
	DefaultBlockPoolCapacity = 256
	// DefaultHivePageSize represents the default for HivePageSize.
	// A value of 64 elements per page balances slab reuse against
	// over-allocating for small-population types.
	DefaultHivePageSize = 64
	// DefaultSchedulerQueueCapacity represents the default for
	// SchedulerQueueCapacity. Zero means the pending queue grows from
	// nothing on first QueueTask, exactly like append(nil, ...).
	DefaultSchedulerQueueCapacity = 0
)

// Config collects the runtime's tunables. The zero value is not valid
// config; always obtain one via DefaultConfig or New.
type Config struct {
	BlockPoolCapacity      int
	HivePageSize           int
	SchedulerQueueCapacity int
}

// New constructs a Config from the given options, starting from
// DefaultConfig.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure BlockPoolCapacity and HivePageSize are valid.
	if cfg.BlockPoolCapacity < 0 {
		cfg.BlockPoolCapacity = DefaultBlockPoolCapacity
	}
	if cfg.HivePageSize <= 0 {
		cfg.HivePageSize = DefaultHivePageSize
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() Config {
	return Config{
		BlockPoolCapacity:      DefaultBlockPoolCapacity,
		HivePageSize:           DefaultHivePageSize,
		SchedulerQueueCapacity: DefaultSchedulerQueueCapacity,
	}
}

// Option is a functional option that mutates a Config during construction.
type Option func(*Config)

// WithBlockPoolCapacity sets the BlockPoolCapacity option.
// A negative value resets to the default.
func WithBlockPoolCapacity(capacity int) Option {
	return func(c *Config) {
		if capacity < 0 {
			c.BlockPoolCapacity = DefaultBlockPoolCapacity
			return
		}
		c.BlockPoolCapacity = capacity
	}
}

// WithHivePageSize sets the HivePageSize option.
// A value <= 0 resets to the default.
func WithHivePageSize(size int) Option {
	return func(c *Config) {
		if size <= 0 {
			c.HivePageSize = DefaultHivePageSize
			return
		}
		c.HivePageSize = size
	}
}

// WithSchedulerQueueCapacity sets the SchedulerQueueCapacity option.
func WithSchedulerQueueCapacity(capacity int) Option {
	return func(c *Config) {
		if capacity < 0 {
			capacity = DefaultSchedulerQueueCapacity
		}
		c.SchedulerQueueCapacity = capacity
	}
}
