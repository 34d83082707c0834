/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package render

import (
	"fmt"
	"io"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTableWriter returns a light-style writer that prints headers as given.
// Column names are matched case-sensitively, so they must not be upper-cased.
func newTableWriter(w io.Writer) prettytable.Writer {
	t := prettytable.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(prettytable.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t
}

// WriteSummary prints the per-column distinct value counts as a table.
func WriteSummary(w io.Writer, summary []lineage.ColumnSummary) {
	t := newTableWriter(w)
	t.AppendHeader(prettytable.Row{"Column", "Unique values"})
	for _, s := range summary {
		t.AppendRow(prettytable.Row{s.Column, s.UniqueValues})
	}
	t.Render()
}

// WritePreview prints the first n rows of tbl. A non-positive n prints
// nothing.
func WritePreview(w io.Writer, tbl *table.Table, n int) {
	if n <= 0 {
		return
	}
	head := tbl.Head(n)
	if head.Len() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTableWriter(w)

	header := make(prettytable.Row, len(head.Columns))
	for i, col := range head.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range head.Rows {
		r := make(prettytable.Row, len(row))
		for i, v := range row {
			r[i] = v
		}
		t.AppendRow(r)
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", head.Len(), tbl.Len())
}
