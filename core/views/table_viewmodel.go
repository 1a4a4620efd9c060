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

// Package views builds the template-facing models for table pages. The
// models carry only strings, flags and pre-built safe URLs; all pipeline
// work happens in core/tabular and all link building in core/query.
package views

import (
	"fmt"
	"strings"

	"github.com/google/safehtml"

	"github.com/reefdesk/tabular/core/query"
	"github.com/reefdesk/tabular/core/tabular"
)

// TableConfig describes one table to the view-model builder: the columns
// and interaction hooks the caller supplies, plus presentation metadata.
type TableConfig[T any] struct {
	Title       string
	Description string
	Columns     []tabular.Column[T]
	// RowKey identifies a row for expansion tracking. Required when
	// Detail is set.
	RowKey       func(T) string
	SearchFields []tabular.SearchField[T]
	Filters      []tabular.Filter
	Defaults     tabular.Defaults
	// Detail renders the expanded detail row, nil for non-expandable
	// tables.
	Detail func(T) []DetailField
	// Loading renders skeleton placeholder rows instead of data.
	Loading bool
}

// DetailField is one label/value pair of an expanded detail row.
type DetailField struct {
	Label string
	Value string
}

// TableViewModel is the data handed to the table template.
type TableViewModel struct {
	Title       string
	Description string

	HasSearch    bool
	SearchValue  string
	SearchAction safehtml.URL
	SearchFields []query.HiddenField

	Filters     []FilterViewModel
	ResultCount int

	Headers []HeaderViewModel
	Rows    []RowViewModel

	Loading  bool
	Skeleton []int
	Empty    bool

	// ColumnCount spans the empty-state and detail cells.
	ColumnCount int

	ShowPagination bool
	PageSizes      []PageSizeViewModel
	RangeLabel     string
	PrevURL        safehtml.URL
	PrevDisabled   bool
	NextURL        safehtml.URL
	NextDisabled   bool

	RenderTimeMs string
}

// FilterViewModel is one filter dropdown.
type FilterViewModel struct {
	Key     string
	Label   string
	Options []FilterOptionViewModel
}

// FilterOptionViewModel is one selectable filter option.
type FilterOptionViewModel struct {
	Label    string
	Value    string
	Selected bool
	URL      safehtml.URL
}

// HeaderViewModel is one column header cell.
type HeaderViewModel struct {
	Label    string
	Sortable bool
	// Direction is "asc" or "desc" when this column is the active sort,
	// empty otherwise.
	Direction string
	URL       safehtml.URL
	Align     string
}

// RowViewModel is one body row, optionally followed by its detail row.
type RowViewModel struct {
	Key        string
	Cells      []CellViewModel
	Expandable bool
	ToggleURL  safehtml.URL
	Expanded   bool
	Detail     []DetailField
}

// CellViewModel is one body cell. Either HTML (custom renderer) or Text.
type CellViewModel struct {
	Text    string
	HTML    safehtml.HTML
	HasHTML bool
	Align   string
	Class   string
}

// PageSizeViewModel is one option of the page-size selector.
type PageSizeViewModel struct {
	Size     int
	Selected bool
	URL      safehtml.URL
}

// BuildTableViewModel runs the view pipeline for the given rows and state
// and assembles the template model, including every toolbar and
// pagination link. When cfg.Loading is set the pipeline is skipped and
// the model carries one skeleton row per page-size slot instead.
func BuildTableViewModel[T any](cfg TableConfig[T], rows []T, st tabular.State, c query.Codec) TableViewModel {
	defaults := cfg.Defaults.WithFallbacks()

	vm := TableViewModel{
		Title:        cfg.Title,
		Description:  cfg.Description,
		HasSearch:    len(cfg.SearchFields) > 0,
		SearchValue:  st.Search,
		SearchAction: safehtml.URLSanitized(c.Path),
		SearchFields: c.SearchFormFields(st),
		ColumnCount:  len(cfg.Columns),
		Loading:      cfg.Loading,
	}

	for _, f := range cfg.Filters {
		fvm := FilterViewModel{Key: f.Key, Label: f.Label}
		active := st.ActiveFilter(f.Key)
		fvm.Options = append(fvm.Options, FilterOptionViewModel{
			Label:    "All",
			Value:    tabular.FilterAll,
			Selected: active == tabular.FilterAll,
			URL:      c.FilterURL(st, f.Key, tabular.FilterAll),
		})
		for _, opt := range f.Options {
			fvm.Options = append(fvm.Options, FilterOptionViewModel{
				Label:    opt.Label,
				Value:    opt.Value,
				Selected: strings.EqualFold(active, opt.Value),
				URL:      c.FilterURL(st, f.Key, opt.Value),
			})
		}
		vm.Filters = append(vm.Filters, fvm)
	}

	for _, col := range cfg.Columns {
		h := HeaderViewModel{
			Label:    col.Label,
			Sortable: col.Sortable && col.Accessor != nil,
			Align:    alignClass(col.Align),
		}
		if h.Sortable {
			h.URL = c.SortToggleURL(st, col.Key)
			if st.SortKey == col.Key {
				h.Direction = string(st.SortDir)
			}
		}
		vm.Headers = append(vm.Headers, h)
	}

	if cfg.Loading {
		vm.Skeleton = make([]int, defaults.PageSize)
		return vm
	}

	res := tabular.Compute(rows, cfg.Columns, cfg.SearchFields, st)
	vm.ResultCount = res.TotalFiltered
	vm.Empty = res.TotalFiltered == 0

	for _, row := range res.Rows {
		rvm := RowViewModel{}
		if cfg.RowKey != nil {
			rvm.Key = cfg.RowKey(row)
		}
		if cfg.Detail != nil && rvm.Key != "" {
			rvm.Expandable = true
			rvm.ToggleURL = c.ExpandToggleURL(st, rvm.Key)
			if st.Expanded == rvm.Key {
				rvm.Expanded = true
				rvm.Detail = cfg.Detail(row)
			}
		}
		for _, col := range cfg.Columns {
			rvm.Cells = append(rvm.Cells, buildCell(col, row))
		}
		vm.Rows = append(vm.Rows, rvm)
	}

	// The footer appears only once the result outgrows the smallest page
	// size on offer.
	if res.TotalFiltered > defaults.MinPageSize() {
		vm.ShowPagination = true
		vm.RangeLabel = fmt.Sprintf("%d–%d / %d", res.Start, res.End, res.TotalFiltered)
		for _, size := range defaults.PageSizeOptions {
			vm.PageSizes = append(vm.PageSizes, PageSizeViewModel{
				Size:     size,
				Selected: size == st.PageSize,
				URL:      c.PageSizeURL(st, size),
			})
		}
		vm.PrevDisabled = res.Page == 0
		vm.NextDisabled = res.Page >= res.PageCount-1
		if !vm.PrevDisabled {
			vm.PrevURL = c.PageURL(st, res.Page-1)
		}
		if !vm.NextDisabled {
			vm.NextURL = c.PageURL(st, res.Page+1)
		}
	}

	return vm
}

// buildCell renders one cell: the custom renderer when present, otherwise
// the escaped accessor value.
func buildCell[T any](col tabular.Column[T], row T) CellViewModel {
	cell := CellViewModel{Align: alignClass(col.Align)}
	if col.Render != nil {
		cell.HTML = col.Render(row)
		cell.HasHTML = true
		return cell
	}
	if col.Accessor != nil {
		value := col.Accessor(row)
		cell.Text = value.String()
		if col.StyleHint != "" && !value.IsNull() {
			cell.Class = styleClass(col.StyleHint, cell.Text)
		}
	}
	return cell
}

func alignClass(a tabular.Align) string {
	switch a {
	case tabular.AlignRight:
		return "right"
	case tabular.AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// styleClass derives the cell class from a column style hint. Badge cells
// get a per-value modifier so status values can be colored individually.
func styleClass(hint, value string) string {
	if hint != "badge" {
		return hint
	}
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	return "badge badge-" + slug
}

// LandingViewModel is the data handed to the landing template.
type LandingViewModel struct {
	Title    string
	Subtitle string
	Tables   []TableInfo
}

// TableInfo is one dataset card on the landing page.
type TableInfo struct {
	Name        string
	Description string
	URL         safehtml.URL
	RecordCount int
	ColumnCount int
}
