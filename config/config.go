/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Reefdesk Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the server configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the server configuration.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string `toml:"addr"`

	// Title and Subtitle appear on the landing page.
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`

	// DefaultPageSize applies to datasets that do not set their own.
	DefaultPageSize int `toml:"default-page-size"`

	// PageSizeOptions is the page-size selector, ascending.
	PageSizeOptions []int `toml:"page-size-options"`

	// Demo enables the built-in sample datasets.
	Demo bool `toml:"demo"`

	// Datasets are CSV files to serve in addition to the demo data.
	Datasets []DatasetConfig `toml:"dataset"`
}

// DatasetConfig describes one CSV-backed dataset.
type DatasetConfig struct {
	Name        string `toml:"name"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Path        string `toml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Addr:            "localhost:8080",
		Title:           "Back office",
		Subtitle:        "Operational tables",
		DefaultPageSize: 10,
		PageSizeOptions: []int{10, 25, 50},
		Demo:            true,
	}
}

// Load reads a TOML file and fills unset fields from the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default-page-size must be positive, got %d", c.DefaultPageSize)
	}
	for i, size := range c.PageSizeOptions {
		if size <= 0 {
			return fmt.Errorf("page-size-options must be positive, got %d", size)
		}
		if i > 0 && size <= c.PageSizeOptions[i-1] {
			return fmt.Errorf("page-size-options must be strictly ascending")
		}
	}
	seen := map[string]bool{}
	for _, d := range c.Datasets {
		if d.Name == "" {
			return fmt.Errorf("dataset without a name")
		}
		if d.Path == "" {
			return fmt.Errorf("dataset %q has no path", d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate dataset name %q", d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}
