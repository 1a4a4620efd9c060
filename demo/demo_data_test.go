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

package demo

import (
	"testing"

	"github.com/reefdesk/tabular/core/tabular"
	"github.com/reefdesk/tabular/datasources"
)

func TestRegisterAll(t *testing.T) {
	reg := datasources.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	for _, name := range []string{"bookings", "centers", "coupons", "members"} {
		d, ok := reg.Get(name)
		if !ok {
			t.Errorf("dataset %q not registered", name)
			continue
		}
		if len(d.Rows) == 0 {
			t.Errorf("dataset %q has no rows", name)
		}
		if len(d.Columns) == 0 {
			t.Errorf("dataset %q has no columns", name)
		}
		if d.Defaults.SortKey == "" || d.Defaults.PageSize == 0 {
			t.Errorf("dataset %q has incomplete defaults: %+v", name, d.Defaults)
		}
	}
}

func TestDatasetColumnsResolve(t *testing.T) {
	reg := datasources.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	// Every declared sort default and filter key must match a column.
	for _, d := range reg.List() {
		keys := map[string]bool{}
		for _, col := range d.Columns {
			keys[col.Key] = true
		}
		if !keys[d.Defaults.SortKey] {
			t.Errorf("%s: default sort key %q has no column", d.Name, d.Defaults.SortKey)
		}
		for _, f := range d.Filters {
			if !keys[f.Key] {
				t.Errorf("%s: filter key %q has no column", d.Name, f.Key)
			}
			found := false
			for _, row := range d.Rows {
				if !row.Get(f.Key).IsNull() {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s: filter key %q never set on any row", d.Name, f.Key)
			}
		}
	}
}

func TestBookingsPipeline(t *testing.T) {
	d := Bookings()
	st := tabular.NewState(d.Defaults).WithFilter("status", "confirmed")
	res := tabular.Compute(d.Rows, d.Columns, d.SearchFields, st)

	if res.TotalFiltered != 4 {
		t.Errorf("confirmed bookings = %d, want 4", res.TotalFiltered)
	}
	for _, r := range res.Rows {
		if r.Get("status").String() != "confirmed" {
			t.Errorf("row %s leaked through status filter", r.Get("reference").String())
		}
	}
	// Default sort is trip date, newest first.
	if got := res.Rows[0].Get("reference").String(); got != "BK-1044" {
		t.Errorf("first confirmed booking = %s, want BK-1044", got)
	}
}

func TestCouponDiscountColumn(t *testing.T) {
	d := Coupons()
	var discount tabular.Column[datasources.Record]
	for _, col := range d.Columns {
		if col.Key == "discount" {
			discount = col
		}
	}
	if discount.Accessor == nil {
		t.Fatal("discount column missing")
	}

	percent := datasources.Record{
		"discount_type":  tabular.String("percent"),
		"discount_value": tabular.Number(15),
	}
	if got := discount.Accessor(percent).String(); got != "15 %" {
		t.Errorf("percent discount = %q", got)
	}

	fixed := datasources.Record{
		"discount_type":  tabular.String("fixed"),
		"discount_value": tabular.Number(10),
	}
	if got := discount.Accessor(fixed).String(); got != "10 EUR" {
		t.Errorf("fixed discount = %q", got)
	}

	if !discount.Accessor(datasources.Record{}).IsNull() {
		t.Error("missing discount value should be null")
	}
}

func TestCouponFilterByType(t *testing.T) {
	d := Coupons()
	st := tabular.NewState(d.Defaults).WithFilter("discount_type", "percent")
	res := tabular.Compute(d.Rows, d.Columns, d.SearchFields, st)

	if res.TotalFiltered != 3 {
		t.Errorf("percent coupons = %d, want 3", res.TotalFiltered)
	}
	for _, r := range res.Rows {
		if r.Get("discount_type").String() != "percent" {
			t.Errorf("coupon %s leaked through type filter", r.Get("code").String())
		}
	}
}

func TestCenterEcoRenderer(t *testing.T) {
	d := Centers()
	var eco tabular.Column[datasources.Record]
	for _, col := range d.Columns {
		if col.Key == "eco" {
			eco = col
		}
	}
	if eco.Render == nil {
		t.Fatal("eco column has no renderer")
	}

	yes := datasources.Record{"eco": tabular.Bool(true)}
	if got := eco.Render(yes).String(); got != "✓" {
		t.Errorf("eco renderer for true = %q", got)
	}
	no := datasources.Record{"eco": tabular.Bool(false)}
	if got := eco.Render(no).String(); got != "–" {
		t.Errorf("eco renderer for false = %q", got)
	}
}

func TestCenterFilterByCountry(t *testing.T) {
	d := Centers()
	st := tabular.NewState(d.Defaults).WithFilter("country", "Indonesia")
	res := tabular.Compute(d.Rows, d.Columns, d.SearchFields, st)

	if res.TotalFiltered != 2 {
		t.Errorf("Indonesian centers = %d, want 2", res.TotalFiltered)
	}
}
