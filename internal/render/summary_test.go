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
	"bytes"
	"testing"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"github.com/stretchr/testify/assert"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, []lineage.ColumnSummary{
		{Column: lineage.ColumnSource, UniqueValues: 2},
		{Column: lineage.ColumnCompliance, UniqueValues: 1},
	})

	out := buf.String()
	assert.Contains(t, out, "Unique values")
	assert.Contains(t, out, lineage.ColumnSource)
	assert.Contains(t, out, lineage.ColumnCompliance)
	assert.Contains(t, out, "2")
	assert.NotContains(t, out, "UNIQUE VALUES")
}

func TestWritePreviewKeepsHeaderCase(t *testing.T) {
	tbl := table.New([]string{lineage.ColumnUseCase, "Compliance "}, [][]string{{"Reporting", "GDPR"}})

	var buf bytes.Buffer
	WritePreview(&buf, tbl, 1)
	out := buf.String()
	assert.Contains(t, out, lineage.ColumnUseCase)
	assert.NotContains(t, out, "USE CASE/SCENARIO")
	assert.NotContains(t, out, "COMPLIANCE")
}

func TestWritePreview(t *testing.T) {
	tbl := table.New([]string{"A", "B"}, [][]string{{"a1", "b1"}, {"a2", "b2"}, {"a3", "b3"}})

	t.Run("limits rows", func(t *testing.T) {
		var buf bytes.Buffer
		WritePreview(&buf, tbl, 2)
		out := buf.String()
		assert.Contains(t, out, "a2")
		assert.NotContains(t, out, "a3")
		assert.Contains(t, out, "(2 of 3 rows)")
	})

	t.Run("zero disables preview", func(t *testing.T) {
		var buf bytes.Buffer
		WritePreview(&buf, tbl, 0)
		assert.Empty(t, buf.String())
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		WritePreview(&buf, table.New([]string{"A"}, nil), 5)
		assert.Equal(t, "(0 rows)\n", buf.String())
	})
}
