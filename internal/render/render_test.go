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
	"encoding/json"
	"strings"
	"testing"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventory(rows ...[4]string) *table.Table {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{"uc", "area", "dcl", r[0], r[1], r[2], r[3], ""})
	}
	return table.New(lineage.DefaultRequiredColumns(), records)
}

func processed(t *testing.T, direction string) *lineage.Result {
	t.Helper()
	tbl := inventory(
		[4]string{"CRM", "Warehouse", "BI", "Dashboard"},
		[4]string{"ERP", "Warehouse", "BI", "Report"},
	)
	// Compliance for the first row only; the second falls back to the sentinel.
	tbl.Rows[0][7] = "GDPR"

	opts := lineage.DefaultOptions()
	opts.Direction = direction
	res, err := lineage.Process(opts, tbl)
	require.NoError(t, err)
	return res
}

func TestFor(t *testing.T) {
	tests := []struct {
		format string
		want   Renderer
	}{
		{"mermaid", Mermaid{}},
		{"DOT", DOT{}},
		{" json ", JSON{}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := For(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}

	_, err := For("png")
	var unknown *UnknownFormatError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "png", unknown.Format)
	assert.Contains(t, err.Error(), "dot, json, mermaid")
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, ".mmd", Mermaid{}.Extension())
	assert.Equal(t, ".dot", DOT{}.Extension())
	assert.Equal(t, ".json", JSON{}.Extension())
	assert.Equal(t, "application/json", JSON{}.ContentType())
}

func TestMermaidRender(t *testing.T) {
	res := processed(t, "LR")
	var buf bytes.Buffer
	require.NoError(t, Mermaid{}.Render(&buf, res))

	want := strings.Join([]string{
		"flowchart LR;",
		"BI --> Dashboard;",
		"BI --> Report;",
		"CRM --> Warehouse;",
		"ERP --> Warehouse;",
		"Warehouse --> BI;",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestDOTGraph(t *testing.T) {
	res := processed(t, "LR")
	g := Graph(res.Graph, res.Direction)

	assert.Equal(t, "LR", g.Value("rankdir"))
	assert.Len(t, g.FindNodes(), 6)

	crm, ok := g.FindNodeById("CRM")
	require.True(t, ok)
	wh, ok := g.FindNodeById("Warehouse")
	require.True(t, ok)
	edges := g.FindEdges(crm, wh)
	require.Len(t, edges, 1)
	assert.Equal(t, "GDPR", edges[0].Value("label"))
}

func TestDOTDirection(t *testing.T) {
	for dir, want := range map[string]string{"TD": "TB", "BT": "BT", "": "LR"} {
		g := Graph(lineage.NewGraph(), dir)
		assert.Equal(t, want, g.Value("rankdir"), dir)
	}
}

func TestDOTRender(t *testing.T) {
	res := processed(t, "TD")
	var buf bytes.Buffer
	require.NoError(t, DOT{}.Render(&buf, res))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "GDPR")
	assert.Contains(t, out, "Warehouse")
}

func TestJSONRender(t *testing.T) {
	res := processed(t, "LR")
	var buf bytes.Buffer
	require.NoError(t, JSON{}.Render(&buf, res))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{"BI", "CRM", "Dashboard", "ERP", "Report", "Warehouse"}, doc.Nodes)
	assert.Equal(t, Stats{Rows: 2, Nodes: 6, Edges: 5}, doc.Stats)
	require.Len(t, doc.Edges, 5)
	assert.Equal(t, lineage.Edge{From: "BI", To: "Dashboard", Compliance: "GDPR"}, doc.Edges[0])

	wh, ok := res.Graph.Edge("Warehouse", "BI")
	require.True(t, ok)
	assert.Equal(t, lineage.Sentinel, wh.Compliance, "last row wins")
	require.Len(t, doc.Summary, len(lineage.DefaultRequiredColumns()))
}
