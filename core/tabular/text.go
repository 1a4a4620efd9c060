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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	textHeaderStyle = lipgloss.NewStyle().Bold(true)
	textFooterStyle = lipgloss.NewStyle().Faint(true)
)

// RenderText renders a computed page as a bordered text table: header row,
// separator, one line per row, and a range footer. Custom cell renderers
// are an HTML concern and are ignored here; cells render the accessor
// value coercion.
func RenderText[T any](cols []Column[T], res Result[T]) string {
	if len(cols) == 0 {
		return ""
	}

	cells := make([][]string, len(res.Rows))
	for i, row := range res.Rows {
		cells[i] = make([]string, len(cols))
		for j, col := range cols {
			if col.Accessor != nil {
				cells[i][j] = col.Accessor(row).String()
			}
		}
	}

	// Column widths fit the widest of header and cells, measured in
	// terminal cells so multi-byte values line up.
	widths := make([]int, len(cols))
	for j, col := range cols {
		widths[j] = lipgloss.Width(col.Label)
		for i := range cells {
			if n := lipgloss.Width(cells[i][j]); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var sb strings.Builder
	writeRow := func(fields []string, style lipgloss.Style, styled bool) {
		for j, field := range fields {
			sb.WriteString("| ")
			padded := pad(field, widths[j], cols[j].Align)
			if styled {
				padded = style.Render(padded)
			}
			sb.WriteString(padded)
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	headers := make([]string, len(cols))
	for j, col := range cols {
		headers[j] = col.Label
	}
	writeRow(headers, textHeaderStyle, true)

	for j := range cols {
		sb.WriteString("|")
		sb.WriteString(strings.Repeat("-", widths[j]+2))
	}
	sb.WriteString("|\n")

	if len(res.Rows) == 0 {
		sb.WriteString("(no rows)\n")
		return sb.String()
	}
	for i := range cells {
		writeRow(cells[i], lipgloss.Style{}, false)
	}

	label := fmt.Sprintf("%d-%d / %d", res.Start, res.End, res.TotalFiltered)
	sb.WriteString(textFooterStyle.Render(label))
	sb.WriteString("\n")
	return sb.String()
}

// pad pads a field to the given width according to the column alignment.
func pad(s string, width int, align Align) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
