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
	"io"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/emicklei/dot"
)

// Graphviz has no TD; Mermaid's TD means top-down.
var rankdirs = map[string]string{
	"LR": "LR",
	"RL": "RL",
	"TB": "TB",
	"TD": "TB",
	"BT": "BT",
}

// DOT writes the graph as a Graphviz digraph. Compliance values become edge
// labels.
type DOT struct{}

func (d DOT) Render(w io.Writer, res *lineage.Result) error {
	_, err := io.WriteString(w, Graph(res.Graph, res.Direction).String())
	return err
}

// Graph converts g into a dot graph laid out in direction. Nodes are added in
// sorted order so the output is stable.
func Graph(g *lineage.Graph, direction string) *dot.Graph {
	out := dot.NewGraph(dot.Directed)
	rankdir, ok := rankdirs[direction]
	if !ok {
		rankdir = "LR"
	}
	out.Attr("rankdir", rankdir)

	for _, label := range g.Nodes() {
		out.Node(label)
	}
	for _, e := range g.Edges() {
		edge := out.Edge(out.Node(e.From), out.Node(e.To))
		if e.Compliance != "" {
			edge.Label(e.Compliance)
		}
	}
	return out
}

func (DOT) ContentType() string { return "text/vnd.graphviz; charset=utf-8" }

func (DOT) Extension() string { return ".dot" }
