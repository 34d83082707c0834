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
	"fmt"
	"sort"
)

// Edge is a directed relation between two pipeline-stage labels.
type Edge struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Compliance string `json:"compliance,omitempty"`
}

// Line returns the flowchart statement for the edge.
func (e Edge) Line() string {
	return fmt.Sprintf("%s --> %s;", e.From, e.To)
}

// EdgeSink consumes the nodes and edges emitted by a Builder.
type EdgeSink interface {
	AddNode(label string)
	AddEdge(edge Edge)
}

// EdgeSet is the text-mode sink: a set of flowchart lines. Nodes and edge
// attributes are not tracked; two edges are equal when their lines are.
type EdgeSet struct {
	lines map[string]struct{}
}

var _ EdgeSink = (*EdgeSet)(nil)

func NewEdgeSet() *EdgeSet {
	return &EdgeSet{lines: make(map[string]struct{})}
}

func (s *EdgeSet) AddNode(string) {}

func (s *EdgeSet) AddEdge(edge Edge) {
	s.lines[edge.Line()] = struct{}{}
}

// Len returns the number of distinct edges.
func (s *EdgeSet) Len() int {
	return len(s.lines)
}

// Lines returns the edge lines in byte order.
func (s *EdgeSet) Lines() []string {
	lines := make([]string, 0, len(s.lines))
	for l := range s.lines {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	return lines
}

type edgeKey struct {
	from, to string
}

// Graph is the graph-mode sink: an explicit node set plus edges keyed by
// their endpoints. When several rows produce the same edge, the compliance
// of the last row wins; earlier values are discarded.
type Graph struct {
	nodes map[string]struct{}
	edges map[edgeKey]*Edge
}

var _ EdgeSink = (*Graph)(nil)

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[edgeKey]*Edge),
	}
}

func (g *Graph) AddNode(label string) {
	g.nodes[label] = struct{}{}
}

func (g *Graph) AddEdge(edge Edge) {
	g.AddNode(edge.From)
	g.AddNode(edge.To)
	key := edgeKey{from: edge.From, to: edge.To}
	if existing, ok := g.edges[key]; ok {
		existing.Compliance = edge.Compliance
		return
	}
	e := edge
	g.edges[key] = &e
}

// HasNode reports whether label was registered.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.nodes[label]
	return ok
}

// Edge returns the edge between from and to, if any.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	e, ok := g.edges[edgeKey{from: from, to: to}]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Nodes returns the registered labels, sorted.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns a copy of the edges sorted by source, then target.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, *e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
