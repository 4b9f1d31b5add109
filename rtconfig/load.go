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

package rtconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config's fields for YAML decoding, so that an
// override file only needs to set the tunables it cares about; fields it
// omits keep DefaultConfig's values rather than being zeroed.
type fileConfig struct {
	BlockPoolCapacity      *int `yaml:"blockPoolCapacity"`
	HivePageSize           *int `yaml:"hivePageSize"`
	SchedulerQueueCapacity *int `yaml:"schedulerQueueCapacity"`
}

// Load reads a YAML override file at path and returns the resulting
// Config, starting from DefaultConfig and applying only the fields the
// file sets. A missing or empty file is not an error; it behaves exactly
// like DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("rtconfig: reading %s: %w", path, err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("rtconfig: parsing %s: %w", path, err)
	}

	var opts []Option
	if fc.BlockPoolCapacity != nil {
		opts = append(opts, WithBlockPoolCapacity(*fc.BlockPoolCapacity))
	}
	if fc.HivePageSize != nil {
		opts = append(opts, WithHivePageSize(*fc.HivePageSize))
	}
	if fc.SchedulerQueueCapacity != nil {
		opts = append(opts, WithSchedulerQueueCapacity(*fc.SchedulerQueueCapacity))
	}
	return New(opts...), nil
}
