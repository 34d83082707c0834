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
package lineage

import "github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"

// ColumnSummary is the number of distinct values seen in one column.
type ColumnSummary struct {
	Column       string `json:"column"`
	UniqueValues int    `json:"unique_values"`
}

// Summarize counts distinct cell values per column, in the order of columns.
// It expects a normalized table, so the sentinel counts as one value.
func Summarize(tbl *table.Table, columns []string) []ColumnSummary {
	summary := make([]ColumnSummary, 0, len(columns))
	for _, col := range columns {
		distinct := make(map[string]struct{})
		for _, row := range tbl.Rows {
			distinct[tbl.Value(row, col)] = struct{}{}
		}
		summary = append(summary, ColumnSummary{Column: col, UniqueValues: len(distinct)})
	}
	return summary
}

// SummaryCounts flattens a summary into a column to count map.
func SummaryCounts(summary []ColumnSummary) map[string]int {
	counts := make(map[string]int, len(summary))
	for _, s := range summary {
		counts[s.Column] = s.UniqueValues
	}
	return counts
}
