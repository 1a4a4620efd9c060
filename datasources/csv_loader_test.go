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

package datasources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefdesk/tabular/core/tabular"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVTypedColumns(t *testing.T) {
	path := writeCSV(t, `dive_site,max_depth,price,night_dive
Blue Hole,120,89.50,true
Coral Garden,18,45.00,false
Wreck Point,,60.00,true
`)

	d, err := LoadCSV(path, "sites", "Dive Sites", "")
	require.NoError(t, err)

	require.Len(t, d.Columns, 4)
	assert.Equal(t, "Dive Site", d.Columns[0].Label)
	assert.Equal(t, tabular.AlignRight, d.Columns[1].Align)

	require.Len(t, d.Rows, 3)
	assert.Equal(t, "Blue Hole", d.Rows[0].Get("dive_site").String())
	assert.True(t, d.Rows[0].Get("max_depth").IsNumber())
	assert.Equal(t, 89.5, d.Rows[0].Get("price").Float())
	assert.Equal(t, "true", d.Rows[0].Get("night_dive").String())
	assert.True(t, d.Rows[2].Get("max_depth").IsNull(), "empty cell should be null")
}

func TestLoadCSVDefaultsAndKey(t *testing.T) {
	path := writeCSV(t, `id,name
s-1,Alpha
s-2,Beta
`)

	d, err := LoadCSV(path, "sites", "Sites", "")
	require.NoError(t, err)

	assert.Equal(t, "id", d.KeyColumn)
	assert.Equal(t, "id", d.Defaults.SortKey)
	assert.Equal(t, tabular.Ascending, d.Defaults.SortDir)
	assert.Equal(t, tabular.DefaultPageSize, d.Defaults.PageSize)
	assert.Equal(t, "s-2", d.RowKey(d.Rows[1]))
}

func TestLoadCSVFilterForLowCardinalityColumn(t *testing.T) {
	path := writeCSV(t, `id,status,notes
1,open,first visit
2,closed,brought own gear
3,open,
4,closed,asked for nitrox
`)

	d, err := LoadCSV(path, "visits", "Visits", "")
	require.NoError(t, err)

	require.Len(t, d.Filters, 1)
	assert.Equal(t, "status", d.Filters[0].Key)
	require.Len(t, d.Filters[0].Options, 2)
	assert.Equal(t, "closed", d.Filters[0].Options[0].Value)
	assert.Equal(t, "Open", d.Filters[0].Options[1].Label)

	// The free-text column becomes a search field instead.
	require.Len(t, d.SearchFields, 1)
	assert.Equal(t, "first visit", d.SearchFields[0](d.Rows[0]))
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), "x", "X", "")
	assert.Error(t, err)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := LoadCSV(path, "x", "X", "")
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Dataset{Name: "bookings"}))
	require.NoError(t, r.Register(&Dataset{Name: "centers"}))

	assert.Error(t, r.Register(&Dataset{Name: "bookings"}), "duplicate name")
	assert.Error(t, r.Register(&Dataset{}), "missing name")

	d, ok := r.Get("centers")
	require.True(t, ok)
	assert.Equal(t, "centers", d.Name)

	_, ok = r.Get("absent")
	assert.False(t, ok)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "bookings", list[0].Name)
	assert.Equal(t, "centers", list[1].Name)
}
