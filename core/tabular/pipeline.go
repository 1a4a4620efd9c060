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

import "strings"

// ApplySearch keeps rows where at least one search field contains the
// trimmed search text, case-insensitively. Empty or whitespace-only text,
// or an empty field list, returns the input unchanged. Order is preserved;
// this is a filter, not a ranking.
func ApplySearch[T any](rows []T, fields []SearchField[T], text string) []T {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" || len(fields) == 0 {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(row)), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// ApplyColumnFilters keeps rows matching every active filter entry.
// An entry is active when its value is not the FilterAll sentinel. Entries
// whose key matches no column, or a column without an accessor, are
// ignored. Rows whose accessor yields null are excluded by any active
// filter on that column. Matching is case-insensitive string equality on
// the value coercion. Filters compose with AND across keys.
func ApplyColumnFilters[T any](rows []T, cols []Column[T], active map[string]string) []T {
	type predicate struct {
		acc  func(T) Value
		want string
	}
	var preds []predicate
	for key, value := range active {
		if value == FilterAll || value == "" {
			continue
		}
		col := columnByKey(cols, key)
		if col == nil || col.Accessor == nil {
			continue
		}
		preds = append(preds, predicate{acc: col.Accessor, want: value})
	}
	if len(preds) == 0 {
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, p := range preds {
			v := p.acc(row)
			if v.IsNull() || !strings.EqualFold(v.String(), p.want) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

// PageCount returns the number of pages needed for total rows, minimum 1.
func PageCount(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	n := (total + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// ClampPage clamps a requested page into the valid range for total rows.
// Stale state pointing past the end (after a filter shrank the result)
// lands on the last page instead of an empty one.
func ClampPage(page, total, pageSize int) int {
	last := PageCount(total, pageSize) - 1
	if page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// Paginate returns the contiguous slice for the given page, clamped so a
// page past the end yields the last page rather than nothing.
func Paginate[T any](rows []T, page, pageSize int) []T {
	if pageSize < 1 {
		pageSize = 1
	}
	page = ClampPage(page, len(rows), pageSize)
	start := page * pageSize
	if start >= len(rows) {
		return rows[:0]
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Result is the derived view for one state: the rows of the current page
// plus the pagination metadata the surrounding UI needs.
type Result[T any] struct {
	// Rows is the visible page slice of the filtered, sorted rows.
	Rows []T
	// TotalFiltered counts rows after search and column filters, before
	// pagination.
	TotalFiltered int
	// PageCount is the number of pages at the current page size.
	PageCount int
	// Page is the clamped current page (0-based).
	Page int
	// Start and End are the 1-based inclusive bounds of the visible range,
	// both 0 when the filtered result is empty.
	Start int
	End   int
}

// Compute runs the full pipeline for one state. The order is fixed:
// search, then column filters, then sort, then pagination, so
// TotalFiltered reflects filtering only and sorting sees the whole
// filtered set. Compute is a pure function of its inputs; identical
// inputs produce identical results.
func Compute[T any](rows []T, cols []Column[T], fields []SearchField[T], st State) Result[T] {
	filtered := ApplySearch(rows, fields, st.Search)
	filtered = ApplyColumnFilters(filtered, cols, st.Filters)
	sorted := ApplySort(filtered, cols, st.SortKey, st.SortDir)

	total := len(sorted)
	page := ClampPage(st.Page, total, st.PageSize)
	visible := Paginate(sorted, page, st.PageSize)

	res := Result[T]{
		Rows:          visible,
		TotalFiltered: total,
		PageCount:     PageCount(total, st.PageSize),
		Page:          page,
	}
	if total > 0 && len(visible) > 0 {
		size := st.PageSize
		if size < 1 {
			size = 1
		}
		res.Start = page*size + 1
		res.End = res.Start + len(visible) - 1
	}
	return res
}
