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

// Package query encodes a table's view state in its URL. Every toolbar
// affordance (sort header, filter option, pagination control) is a link to
// the URL of the transitioned state, so a table page is fully determined
// by its address and the browser history doubles as undo.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/safehtml"

	"github.com/reefdesk/tabular/core/tabular"
)

// Parameter names. Filter parameters use the "filter:" prefix followed by
// the column key, one parameter per active filter.
const (
	paramSearch   = "q"
	paramSort     = "sort"
	paramDir      = "dir"
	paramPage     = "page"
	paramPageSize = "size"
	paramExpand   = "expand"
	filterPrefix  = "filter:"
)

// Codec parses and builds view-state URLs for one table.
type Codec struct {
	// Path is the page path the links point at (e.g. "/table").
	Path string
	// Base holds parameters carried through every link unchanged
	// (e.g. the dataset name).
	Base url.Values
	// Defaults supplies the state for parameters absent from the URL.
	Defaults tabular.Defaults
}

// Parse extracts the view state from a request URL. Missing or malformed
// parameters fall back to the defaults; unknown parameters are ignored.
func (c Codec) Parse(u *url.URL) tabular.State {
	st := tabular.NewState(c.Defaults)
	q := u.Query()

	st.Search = q.Get(paramSearch)

	if sortKey := q.Get(paramSort); sortKey != "" {
		st.SortKey = sortKey
		st.SortDir = tabular.Ascending
	}
	if dir := q.Get(paramDir); dir == string(tabular.Descending) {
		st.SortDir = tabular.Descending
	} else if dir == string(tabular.Ascending) {
		st.SortDir = tabular.Ascending
	}

	if pageStr := q.Get(paramPage); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 0 {
			st.Page = page
		}
	}
	if sizeStr := q.Get(paramPageSize); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			st.PageSize = size
		}
	}

	st.Expanded = q.Get(paramExpand)

	for key, values := range q {
		if strings.HasPrefix(key, filterPrefix) && len(values) > 0 && values[0] != "" {
			if values[0] != tabular.FilterAll {
				st.Filters[strings.TrimPrefix(key, filterPrefix)] = values[0]
			}
		}
	}

	return st
}

// URL builds the address of a state. Parameters at their zero state are
// omitted to keep links short; the page size is always present so copied
// links pin the visible density.
func (c Codec) URL(st tabular.State) safehtml.URL {
	q := url.Values{}
	for key, values := range c.Base {
		for _, v := range values {
			q.Add(key, v)
		}
	}

	if st.Search != "" {
		q.Set(paramSearch, st.Search)
	}
	if st.SortKey != "" {
		q.Set(paramSort, st.SortKey)
		q.Set(paramDir, string(st.SortDir))
	}
	if st.Page > 0 {
		q.Set(paramPage, strconv.Itoa(st.Page))
	}
	q.Set(paramPageSize, strconv.Itoa(st.PageSize))
	if st.Expanded != "" {
		q.Set(paramExpand, st.Expanded)
	}
	for key, value := range st.Filters {
		if value != "" && value != tabular.FilterAll {
			q.Set(filterPrefix+key, value)
		}
	}

	u := &url.URL{Path: c.Path, RawQuery: q.Encode()}
	return safehtml.URLSanitized(u.String())
}

// SortToggleURL is the link behind a sortable header.
func (c Codec) SortToggleURL(st tabular.State, key string) safehtml.URL {
	return c.URL(st.WithSortToggled(key))
}

// FilterURL is the link behind one option of a filter dropdown.
func (c Codec) FilterURL(st tabular.State, key, value string) safehtml.URL {
	return c.URL(st.WithFilter(key, value))
}

// PageURL is the link behind a pagination control.
func (c Codec) PageURL(st tabular.State, page int) safehtml.URL {
	return c.URL(st.WithPage(page))
}

// PageSizeURL is the link behind a page-size option.
func (c Codec) PageSizeURL(st tabular.State, size int) safehtml.URL {
	return c.URL(st.WithPageSize(size))
}

// ExpandToggleURL is the link behind an expandable row.
func (c Codec) ExpandToggleURL(st tabular.State, rowKey string) safehtml.URL {
	return c.URL(st.WithExpandToggled(rowKey))
}

// HiddenField is a name/value pair a search form must submit alongside the
// search text so the rest of the view state survives the GET round trip.
type HiddenField struct {
	Name  string
	Value string
}

// SearchFormFields returns the hidden fields for the search form: the base
// parameters plus the encoded state minus the search text (owned by the
// visible input) and the page (a new search always starts at page 0).
func (c Codec) SearchFormFields(st tabular.State) []HiddenField {
	var fields []HiddenField
	for key, values := range c.Base {
		for _, v := range values {
			fields = append(fields, HiddenField{Name: key, Value: v})
		}
	}
	if st.SortKey != "" {
		fields = append(fields,
			HiddenField{Name: paramSort, Value: st.SortKey},
			HiddenField{Name: paramDir, Value: string(st.SortDir)})
	}
	fields = append(fields, HiddenField{Name: paramPageSize, Value: strconv.Itoa(st.PageSize)})
	for key, value := range st.Filters {
		if value != "" && value != tabular.FilterAll {
			fields = append(fields, HiddenField{Name: filterPrefix + key, Value: value})
		}
	}
	return fields
}
