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

package tabular

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// DefaultPageSizeOptions is used when a table does not configure its own.
var DefaultPageSizeOptions = []int{10, 25, 50}

// DefaultPageSize is used when a table does not configure its own.
const DefaultPageSize = 10

// Defaults configures the initial view state of a table.
type Defaults struct {
	SortKey         string
	SortDir         Direction
	PageSize        int
	PageSizeOptions []int
}

// WithFallbacks fills unset fields with the package defaults.
func (d Defaults) WithFallbacks() Defaults {
	if d.SortDir == "" {
		d.SortDir = Ascending
	}
	if len(d.PageSizeOptions) == 0 {
		d.PageSizeOptions = DefaultPageSizeOptions
	}
	if d.PageSize <= 0 {
		d.PageSize = d.PageSizeOptions[0]
	}
	return d
}

// MinPageSize returns the smallest configured page size option.
func (d Defaults) MinPageSize() int {
	d = d.WithFallbacks()
	min := d.PageSizeOptions[0]
	for _, n := range d.PageSizeOptions[1:] {
		if n < min {
			min = n
		}
	}
	return min
}

// State is the interactive view state of one table: search text, active
// filters, sort key and direction, page, page size and the expanded row.
// State values are immutable; every transition clones and returns a new
// State, so a State can be compared, logged or encoded at any point.
type State struct {
	Search   string
	Filters  map[string]string
	SortKey  string
	SortDir  Direction
	Page     int
	PageSize int
	Expanded string
}

// NewState creates the initial state for a table with the given defaults.
func NewState(d Defaults) State {
	d = d.WithFallbacks()
	return State{
		Filters:  make(map[string]string),
		SortKey:  d.SortKey,
		SortDir:  d.SortDir,
		PageSize: d.PageSize,
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Filters = make(map[string]string, len(s.Filters))
	for k, v := range s.Filters {
		c.Filters[k] = v
	}
	return c
}

// WithSearch sets the search text and resets the page.
func (s State) WithSearch(text string) State {
	c := s.Clone()
	c.Search = text
	c.Page = 0
	return c
}

// WithFilter sets the active value for a filter key and resets the page.
// The FilterAll sentinel clears the entry.
func (s State) WithFilter(key, value string) State {
	c := s.Clone()
	if value == FilterAll {
		delete(c.Filters, key)
	} else {
		c.Filters[key] = value
	}
	c.Page = 0
	return c
}

// WithSortToggled applies a sort header click: a repeated key flips the
// direction, a new key sorts ascending. The page resets either way so the
// view never lands past the end of a reordered result.
func (s State) WithSortToggled(key string) State {
	c := s.Clone()
	if c.SortKey == key {
		if c.SortDir == Descending {
			c.SortDir = Ascending
		} else {
			c.SortDir = Descending
		}
	} else {
		c.SortKey = key
		c.SortDir = Ascending
	}
	c.Page = 0
	return c
}

// WithPage moves to the given page, clamped at 0. Clamping against the
// last page happens in the pipeline, where the filtered count is known.
func (s State) WithPage(page int) State {
	c := s.Clone()
	if page < 0 {
		page = 0
	}
	c.Page = page
	return c
}

// WithPageSize sets the page size and resets the page.
func (s State) WithPageSize(n int) State {
	c := s.Clone()
	if n > 0 {
		c.PageSize = n
	}
	c.Page = 0
	return c
}

// WithExpandToggled toggles the expanded row: toggling the currently
// expanded key collapses it, any other key replaces it. At most one row is
// expanded at a time.
func (s State) WithExpandToggled(rowKey string) State {
	c := s.Clone()
	if c.Expanded == rowKey {
		c.Expanded = ""
	} else {
		c.Expanded = rowKey
	}
	return c
}

// ActiveFilter returns the active value for a filter key, or FilterAll.
func (s State) ActiveFilter(key string) string {
	if v, ok := s.Filters[key]; ok && v != "" {
		return v
	}
	return FilterAll
}
