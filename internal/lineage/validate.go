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

// MissingColumns returns the required names absent from the table header,
// in the order they appear in required. Matching is exact and case-sensitive.
func MissingColumns(tbl *table.Table, required []string) []string {
	missing := []string{}
	for _, col := range required {
		if !tbl.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Validate returns a *MissingColumnsError when any required column is absent.
func Validate(tbl *table.Table, required []string) error {
	if missing := MissingColumns(tbl, required); len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}
