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

import (
	"strings"
	"unicode"
)

var labelReplacer = strings.NewReplacer(
	"\n", " ",
	`"`, "'",
	"/", "-",
)

// SanitizeLabel turns a raw cell value into a node identifier made only of
// letters, numbers (any Unicode number category), underscores and dashes. Slashes become dashes and spaces
// become underscores before the character filter runs, so "ETL/Spark" maps
// to "ETL-Spark" and "Sales DB" to "Sales_DB". The result may be empty.
func SanitizeLabel(value string) string {
	label := strings.TrimSpace(value)
	label = labelReplacer.Replace(label)
	label = strings.ReplaceAll(label, " ", "_")
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, label)
}
