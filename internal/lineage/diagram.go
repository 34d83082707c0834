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
)

// Serialize renders the edge set as a Mermaid flowchart definition: a
// "flowchart <direction>;" header followed by one "from --> to;" line per
// edge in byte order. Lines are trimmed after sorting, so an edge whose
// source label is empty is written as "--> to;".
func Serialize(edges *EdgeSet, direction string) string {
	if direction == "" {
		direction = DefaultDirection
	}
	var b strings.Builder
	b.WriteString("flowchart ")
	b.WriteString(direction)
	b.WriteString(";")
	for _, line := range edges.Lines() {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(line))
	}
	return b.String()
}
