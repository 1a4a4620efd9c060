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

// Package tabular turns an arbitrary collection of rows into a searched,
// filtered, sorted and paginated view. Rows are opaque to the engine: every
// inspection goes through caller-supplied accessor functions, so any row
// type works without reflection or marker interfaces.
package tabular

import (
	"strconv"

	"github.com/google/safehtml"
)

type valueKind uint8

const (
	kindNull valueKind = iota
	kindString
	kindNumber
	kindBool
)

// Value is the scalar a column accessor extracts from a row. It is one of
// string, number, bool or null. Null values never match filters and always
// sort last.
type Value struct {
	kind valueKind
	str  string
	num  float64
	b    bool
}

// Null returns the null Value. The zero Value is also null.
func Null() Value {
	return Value{}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: kindString, str: s}
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// Int returns a numeric Value from an integer.
func Int(i int) Value {
	return Number(float64(i))
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: kindBool, b: b}
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.kind == kindNumber
}

// Float returns the numeric value, or 0 for non-numeric values.
func (v Value) Float() float64 {
	if v.kind != kindNumber {
		return 0
	}
	return v.num
}

// String coerces the value to a string: numbers use the shortest exact
// representation, bools render as "true"/"false", null renders empty.
// Filtering and non-numeric sorting operate on this coercion.
func (v Value) String() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Align is the horizontal alignment hint for a column.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes one column of a table view: how to label it, how to
// extract a sortable/filterable scalar from a row, and optionally how to
// render the cell.
type Column[T any] struct {
	// Key identifies the column in sort and filter state. Unique per table.
	Key string
	// Label is the header text.
	Label string
	// Accessor extracts the cell value used for sorting, filter equality
	// and default rendering. A column without an accessor renders empty
	// and can neither sort nor filter.
	Accessor func(T) Value
	// Render overrides the default cell rendering. When nil, cells render
	// the accessor value as escaped text.
	Render func(T) safehtml.HTML
	// Sortable marks the column header as click-to-sort. Sorting is a
	// no-op unless an Accessor is present.
	Sortable bool
	Align    Align
	// StyleHint is an optional class hint for renderers ("badge", "mono").
	StyleHint string
}

// NewColumn creates a sortable column with the given accessor. Columns that
// need a custom renderer, alignment or style hint can be built as struct
// literals instead.
func NewColumn[T any](key, label string, accessor func(T) Value) Column[T] {
	return Column[T]{
		Key:      key,
		Label:    label,
		Accessor: accessor,
		Sortable: accessor != nil,
	}
}

// columnByKey returns the column with the given key, or nil.
func columnByKey[T any](cols []Column[T], key string) *Column[T] {
	for i := range cols {
		if cols[i].Key == key {
			return &cols[i]
		}
	}
	return nil
}

// FilterAll is the sentinel option value that disables a filter.
const FilterAll = "all"

// FilterOption is one selectable value of a discrete column filter.
type FilterOption struct {
	Value string
	Label string
}

// Filter describes a discrete per-column filter dropdown. Key must match a
// column key; selecting an option keeps rows whose accessor value equals
// the option value case-insensitively.
type Filter struct {
	Key     string
	Label   string
	Options []FilterOption
}

// SearchField extracts the text searched by the toolbar search box from a
// row. Fields yielding no text never match.
type SearchField[T any] func(T) string
