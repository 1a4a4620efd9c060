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
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reefdesk/tabular/core/tabular"
)

// columnType is the inferred type of a CSV column.
type columnType int

const (
	typeString columnType = iota
	typeInt
	typeFloat
	typeBool
)

// filterCardinality caps how many distinct values a string column may
// have and still get an automatic filter dropdown.
const filterCardinality = 8

// LoadCSV reads a CSV file with a header row into a dataset. Column
// types are inferred by sampling the data; empty cells become null.
// String columns with few distinct values get a filter, the remaining
// string columns become search fields, and the first column serves as
// row key and default sort.
func LoadCSV(path, name, title, description string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no header row", path)
	}

	header := rows[0]
	data := rows[1:]

	types := make([]columnType, len(header))
	for i := range header {
		types[i] = inferColumnType(i, data)
	}

	d := &Dataset{
		Name:        name,
		Title:       title,
		Description: description,
	}
	titler := cases.Title(language.English)

	for i, key := range header {
		col := tabular.NewColumn(key, titler.String(strings.ReplaceAll(key, "_", " ")), Field(key))
		if types[i] == typeInt || types[i] == typeFloat {
			col.Align = tabular.AlignRight
		}
		d.Columns = append(d.Columns, col)

		if types[i] == typeString {
			if options := filterOptions(i, data); options != nil {
				d.Filters = append(d.Filters, tabular.Filter{
					Key:     key,
					Label:   col.Label,
					Options: options,
				})
			} else {
				d.SearchFields = append(d.SearchFields, SearchOn(key))
			}
		}
	}

	for _, row := range data {
		rec := make(Record, len(header))
		for i, key := range header {
			if i >= len(row) {
				continue
			}
			rec[key] = parseCell(row[i], types[i])
		}
		d.Rows = append(d.Rows, rec)
	}

	d.KeyColumn = header[0]
	d.Defaults = tabular.Defaults{
		SortKey: header[0],
		SortDir: tabular.Ascending,
	}.WithFallbacks()

	return d, nil
}

// parseCell converts one cell according to the column's inferred type.
func parseCell(raw string, t columnType) tabular.Value {
	if raw == "" {
		return tabular.Null()
	}
	switch t {
	case typeInt:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return tabular.Int(int(n))
		}
	case typeFloat:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return tabular.Number(f)
		}
	case typeBool:
		switch raw {
		case "true", "1", "yes":
			return tabular.Bool(true)
		case "false", "0", "no":
			return tabular.Bool(false)
		}
	}
	return tabular.String(raw)
}

// inferColumnType samples up to 100 rows of one column. Empty cells are
// skipped; a column where every sampled cell parses as an int is an int
// column, and so on down to string.
func inferColumnType(colIdx int, rows [][]string) columnType {
	sampleSize := len(rows)
	if sampleSize > 100 {
		sampleSize = 100
	}

	isInt := true
	isFloat := true
	isBool := true

	for i := 0; i < sampleSize; i++ {
		if colIdx >= len(rows[i]) {
			continue
		}
		val := rows[i][colIdx]
		if val == "" {
			continue
		}

		if isInt {
			if _, err := strconv.ParseInt(val, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(val, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			switch val {
			case "true", "false", "0", "1", "yes", "no":
			default:
				isBool = false
			}
		}
	}

	if isInt {
		return typeInt
	}
	if isFloat {
		return typeFloat
	}
	if isBool {
		return typeBool
	}
	return typeString
}

// filterOptions returns the distinct values of a string column, sorted,
// or nil when the column does not make a useful dropdown. A column
// qualifies when its values repeat and there are few enough of them.
func filterOptions(colIdx int, rows [][]string) []tabular.FilterOption {
	distinct := map[string]struct{}{}
	filled := 0
	for _, row := range rows {
		if colIdx >= len(row) || row[colIdx] == "" {
			continue
		}
		filled++
		distinct[row[colIdx]] = struct{}{}
		if len(distinct) > filterCardinality {
			return nil
		}
	}
	if len(distinct) < 2 || len(distinct) == filled {
		return nil
	}

	values := make([]string, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Strings(values)

	titler := cases.Title(language.English)
	options := make([]tabular.FilterOption, 0, len(values))
	for _, v := range values {
		options = append(options, tabular.FilterOption{
			Value: v,
			Label: titler.String(strings.ReplaceAll(v, "_", " ")),
		})
	}
	return options
}
