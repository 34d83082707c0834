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

// Normalize returns a copy of tbl in which every empty cell, in every column,
// holds sentinel. The input table is left untouched.
func Normalize(tbl *table.Table, sentinel string) *table.Table {
	out := tbl.Clone()
	for _, row := range out.Rows {
		for i, v := range row {
			if v == "" {
				row[i] = sentinel
			}
		}
	}
	return out
}
