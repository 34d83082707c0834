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

// Package lineage turns a lineage inventory table into a deduplicated set of
// directed edges and renders it as a flowchart definition.
//
// A table flows through Validate, Normalize and a Builder, which feeds two
// sinks: an EdgeSet for the text diagram and a Graph that keeps nodes and
// per-edge compliance for graph renderers. Process runs the whole chain.
package lineage

import (
	"fmt"
	"time"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"go.uber.org/zap"
)

// Result is everything produced from one input table.
type Result struct {
	Table   *table.Table
	Edges   *EdgeSet
	Graph   *Graph
	Diagram string
	Summary []ColumnSummary
	Stats   BuildStats

	// Direction is the validated flowchart direction used for Diagram.
	Direction string
}

// Process validates, normalizes and converts tbl. A table missing required
// columns yields a *MissingColumnsError and no result.
func Process(opts Options, tbl *table.Table) (*Result, error) {
	startTime := time.Now()
	if tbl == nil {
		return nil, fmt.Errorf("no input table")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(tbl, opts.RequiredColumns); err != nil {
		return nil, err
	}

	zap.S().Infof("Processing %d lineage row(s)...", tbl.Len())

	normalized := Normalize(tbl, opts.Sentinel)
	edges := NewEdgeSet()
	graph := NewGraph()
	stats := NewBuilder(opts.Stages).Build(normalized, edges, graph)

	res := &Result{
		Table:     normalized,
		Edges:     edges,
		Graph:     graph,
		Diagram:   Serialize(edges, opts.Direction),
		Direction: opts.Direction,
		Summary:   Summarize(normalized, opts.RequiredColumns),
		Stats:     stats,
	}

	zap.S().Infof("Lineage processing completed in %s. %d node(s), %d edge(s).",
		time.Since(startTime), graph.NodeCount(), edges.Len())
	return res, nil
}
