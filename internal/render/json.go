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
	"encoding/json"
	"io"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
)

// Document is the JSON form of a lineage result.
type Document struct {
	Nodes   []string                `json:"nodes"`
	Edges   []lineage.Edge          `json:"edges"`
	Stats   Stats                   `json:"stats"`
	Summary []lineage.ColumnSummary `json:"summary"`
}

// Stats holds the counts reported alongside the graph.
type Stats struct {
	Rows        int `json:"rows"`
	Nodes       int `json:"nodes"`
	Edges       int `json:"edges"`
	EmptyLabels int `json:"empty_labels"`
}

// NewDocument builds the JSON document for res.
func NewDocument(res *lineage.Result) Document {
	return Document{
		Nodes: res.Graph.Nodes(),
		Edges: res.Graph.Edges(),
		Stats: Stats{
			Rows:        res.Stats.Rows,
			Nodes:       res.Graph.NodeCount(),
			Edges:       res.Graph.EdgeCount(),
			EmptyLabels: res.Stats.EmptyLabels,
		},
		Summary: res.Summary,
	}
}

// JSON writes the graph nodes, edges and counts as an indented document.
type JSON struct{}

func (JSON) Render(w io.Writer, res *lineage.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(res))
}

func (JSON) ContentType() string { return "application/json" }

func (JSON) Extension() string { return ".json" }
