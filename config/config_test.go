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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabular.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
addr = "0.0.0.0:9000"
title = "Reefdesk"
default-page-size = 25
page-size-options = [25, 50, 100]
demo = false

[[dataset]]
name = "sites"
title = "Dive Sites"
path = "sites.csv"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.Equal(t, "Reefdesk", cfg.Title)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, []int{25, 50, 100}, cfg.PageSizeOptions)
	assert.False(t, cfg.Demo)
	require.Len(t, cfg.Datasets, 1)
	assert.Equal(t, "sites", cfg.Datasets[0].Name)
}

func TestLoadKeepsDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, `title = "Reefdesk"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.True(t, cfg.Demo)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"zero page size", func(c *Config) { c.DefaultPageSize = 0 }},
		{"negative option", func(c *Config) { c.PageSizeOptions = []int{-5} }},
		{"unsorted options", func(c *Config) { c.PageSizeOptions = []int{25, 10} }},
		{"unnamed dataset", func(c *Config) { c.Datasets = []DatasetConfig{{Path: "x.csv"}} }},
		{"dataset without path", func(c *Config) { c.Datasets = []DatasetConfig{{Name: "x"}} }},
		{"duplicate dataset", func(c *Config) {
			c.Datasets = []DatasetConfig{{Name: "x", Path: "a.csv"}, {Name: "x", Path: "b.csv"}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
