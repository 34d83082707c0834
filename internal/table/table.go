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

// Package table holds the in-memory tabular form of a lineage inventory and
// the readers that produce it from spreadsheets, delimited files and
// database result sets.
package table

import "fmt"

// Row is one record, aligned with Table.Columns. A missing cell is "".
type Row []string

// Table is an ordered sequence of rows sharing one header.
type Table struct {
	Columns []string
	Rows    []Row
}

// New builds a table from a header and raw records. Header names are kept
// byte for byte, empty names become "Unnamed: <i>", and duplicates are renamed "Name.1", "Name.2", ... so the first occurrence
// keeps the exact name. Records are padded or truncated to the header width,
// and records with no non-empty cell are dropped.
func New(header []string, records [][]string) *Table {
	columns := dedupeHeader(header)
	t := &Table{
		Columns: columns,
		Rows:    make([]Row, 0, len(records)),
	}
	for _, rec := range records {
		row := make(Row, len(columns))
		copy(row, rec)
		if isBlank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func dedupeHeader(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		columns[i] = name
	}
	return columns
}

func isBlank(row Row) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

// ColumnIndex returns the position of the first column named name, or -1.
// It reads Columns on every call, so edits to the header are seen at once.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the header contains name exactly.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Value returns the cell of row in the named column, "" when the column is
// unknown or the row is short.
func (t *Table) Value(row Row, column string) string {
	i := t.ColumnIndex(column)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Head returns a table holding at most the first n rows.
func (t *Table) Head(n int) *Table {
	if n < 0 || n > len(t.Rows) {
		n = len(t.Rows)
	}
	head := &Table{
		Columns: t.Columns,
		Rows:    t.Rows[:n],
	}
	return head
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		c.Rows[i] = append(Row(nil), row...)
	}
	return c
}
