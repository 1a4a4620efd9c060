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

// Package datasources holds the datasets a server exposes: in-memory
// record collections with their column definitions, plus loaders that
// build them from external files.
package datasources

import (
	"github.com/reefdesk/tabular/core/tabular"
	"github.com/reefdesk/tabular/core/views"
)

// Record is one row of a dataset, keyed by column key. Missing keys read
// as null.
type Record map[string]tabular.Value

// Get returns the value stored under key, or null when absent.
func (r Record) Get(key string) tabular.Value {
	if v, ok := r[key]; ok {
		return v
	}
	return tabular.Null()
}

// Field builds a column accessor reading the given key.
func Field(key string) func(Record) tabular.Value {
	return func(r Record) tabular.Value {
		return r.Get(key)
	}
}

// SearchOn builds a search field reading the given key as text.
func SearchOn(key string) tabular.SearchField[Record] {
	return func(r Record) string {
		return r.Get(key).String()
	}
}

// Dataset is one browsable table: its rows plus everything the view
// pipeline needs to present them.
type Dataset struct {
	Name        string
	Title       string
	Description string

	Rows         []Record
	Columns      []tabular.Column[Record]
	SearchFields []tabular.SearchField[Record]
	Filters      []tabular.Filter
	Defaults     tabular.Defaults

	// KeyColumn identifies rows for expansion. Empty disables detail
	// rows even when Detail is set.
	KeyColumn string
	Detail    func(Record) []views.DetailField
}

// RowKey returns the key of a row, empty when the dataset has no key
// column.
func (d *Dataset) RowKey(r Record) string {
	if d.KeyColumn == "" {
		return ""
	}
	return r.Get(d.KeyColumn).String()
}

// ViewConfig assembles the table configuration for this dataset.
func (d *Dataset) ViewConfig() views.TableConfig[Record] {
	cfg := views.TableConfig[Record]{
		Title:        d.Title,
		Description:  d.Description,
		Columns:      d.Columns,
		SearchFields: d.SearchFields,
		Filters:      d.Filters,
		Defaults:     d.Defaults,
	}
	if d.KeyColumn != "" {
		cfg.RowKey = d.RowKey
		cfg.Detail = d.Detail
	}
	return cfg
}
