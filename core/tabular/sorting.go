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

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ApplySort returns the rows ordered by the accessor of the column matching
// sortKey. An empty or unknown key, or a column without an accessor, is a
// stable passthrough: the input slice is returned unchanged, never an
// error.
//
// Comparison is key-extraction-then-compare: two numbers compare
// numerically, anything else compares by locale-aware collation of the
// string coercion. Equal keys keep their input order (stable sort).
//
// Null values sink to the end regardless of direction. The direction
// multiplier is applied only to the non-null comparison branch; flipping
// to descending therefore reverses the data order but keeps nulls last.
func ApplySort[T any](rows []T, cols []Column[T], sortKey string, dir Direction) []T {
	if sortKey == "" {
		return rows
	}
	col := columnByKey(cols, sortKey)
	if col == nil || col.Accessor == nil {
		return rows
	}

	sorted := make([]T, len(rows))
	copy(sorted, rows)

	coll := collate.New(language.Und)
	acc := col.Accessor
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := acc(sorted[i]), acc(sorted[j])
		if a.IsNull() || b.IsNull() {
			// Nulls last in both directions: equal when both null,
			// otherwise the non-null value wins.
			return !a.IsNull() && b.IsNull()
		}
		cmp := compareNonNull(coll, a, b)
		if dir == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
	return sorted
}

// compareNonNull compares two non-null values: numerically when both are
// numbers, otherwise by collation of their string coercions (so a bool
// column orders "false" < "true").
func compareNonNull(coll *collate.Collator, a, b Value) int {
	if a.IsNumber() && b.IsNumber() {
		switch {
		case a.Float() < b.Float():
			return -1
		case a.Float() > b.Float():
			return 1
		default:
			return 0
		}
	}
	return coll.CompareString(a.String(), b.String())
}
