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

import "testing"

func TestNewStateDefaults(t *testing.T) {
	st := NewState(Defaults{})
	if st.SortKey != "" || st.SortDir != Ascending {
		t.Errorf("expected neutral ascending sort, got %q %q", st.SortKey, st.SortDir)
	}
	if st.Page != 0 || st.PageSize != DefaultPageSize {
		t.Errorf("expected page 0 size %d, got page %d size %d", DefaultPageSize, st.Page, st.PageSize)
	}
	if st.Search != "" || len(st.Filters) != 0 || st.Expanded != "" {
		t.Errorf("expected empty search/filters/expansion, got %+v", st)
	}

	st = NewState(Defaults{SortKey: "date", SortDir: Descending, PageSize: 25})
	if st.SortKey != "date" || st.SortDir != Descending || st.PageSize != 25 {
		t.Errorf("configured defaults not applied: %+v", st)
	}
}

func TestWithSortToggled(t *testing.T) {
	st := NewState(Defaults{}).WithPage(3)

	st = st.WithSortToggled("name")
	if st.SortKey != "name" || st.SortDir != Ascending {
		t.Errorf("new key must sort ascending, got %q %q", st.SortKey, st.SortDir)
	}
	if st.Page != 0 {
		t.Errorf("sort change must reset the page, got %d", st.Page)
	}

	st = st.WithSortToggled("name")
	if st.SortDir != Descending {
		t.Errorf("repeated key must flip to descending, got %q", st.SortDir)
	}
	st = st.WithSortToggled("name")
	if st.SortDir != Ascending {
		t.Errorf("third click must flip back to ascending, got %q", st.SortDir)
	}

	st = st.WithSortToggled("age")
	if st.SortKey != "age" || st.SortDir != Ascending {
		t.Errorf("switching keys must reset to ascending, got %q %q", st.SortKey, st.SortDir)
	}
}

func TestWithFilter(t *testing.T) {
	st := NewState(Defaults{}).WithPage(2)

	st = st.WithFilter("status", "confirmed")
	if st.Filters["status"] != "confirmed" {
		t.Errorf("expected filter set, got %v", st.Filters)
	}
	if st.Page != 0 {
		t.Errorf("filter change must reset the page, got %d", st.Page)
	}

	st = st.WithFilter("status", FilterAll)
	if _, ok := st.Filters["status"]; ok {
		t.Errorf("the sentinel must clear the entry, got %v", st.Filters)
	}
	if st.ActiveFilter("status") != FilterAll {
		t.Errorf("expected ActiveFilter to report the sentinel")
	}
}

func TestWithSearchAndPageSizeResetPage(t *testing.T) {
	st := NewState(Defaults{}).WithPage(4)
	if st.WithSearch("reef").Page != 0 {
		t.Error("search change must reset the page")
	}
	st = st.WithPageSize(25)
	if st.Page != 0 || st.PageSize != 25 {
		t.Errorf("expected page 0 size 25, got page %d size %d", st.Page, st.PageSize)
	}
	// Non-positive sizes are ignored rather than validated.
	if st.WithPageSize(0).PageSize != 25 {
		t.Error("page size 0 must keep the previous size")
	}
}

func TestWithExpandToggled(t *testing.T) {
	st := NewState(Defaults{})

	st = st.WithExpandToggled("row-1")
	if st.Expanded != "row-1" {
		t.Errorf("expected row-1 expanded, got %q", st.Expanded)
	}

	// Expanding another row replaces the current one.
	st = st.WithExpandToggled("row-2")
	if st.Expanded != "row-2" {
		t.Errorf("expected row-2 expanded, got %q", st.Expanded)
	}

	st = st.WithExpandToggled("row-2")
	if st.Expanded != "" {
		t.Errorf("expected collapse, got %q", st.Expanded)
	}
}

func TestTransitionsDoNotShareFilters(t *testing.T) {
	base := NewState(Defaults{}).WithFilter("status", "confirmed")
	next := base.WithFilter("role", "admin")

	if _, ok := base.Filters["role"]; ok {
		t.Error("transition leaked into the previous state")
	}
	if len(next.Filters) != 2 {
		t.Errorf("expected both filters in the new state, got %v", next.Filters)
	}
}

func TestDefaultsFallbacks(t *testing.T) {
	d := Defaults{}.WithFallbacks()
	if d.PageSize != 10 || len(d.PageSizeOptions) != 3 {
		t.Errorf("unexpected fallbacks: %+v", d)
	}
	if d.MinPageSize() != 10 {
		t.Errorf("expected min page size 10, got %d", d.MinPageSize())
	}

	d = Defaults{PageSizeOptions: []int{50, 5, 25}}.WithFallbacks()
	if d.MinPageSize() != 5 {
		t.Errorf("expected min page size 5, got %d", d.MinPageSize())
	}
	if d.PageSize != 50 {
		t.Errorf("expected first option as default size, got %d", d.PageSize)
	}
}
