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
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"go.uber.org/zap"
)

// Builder walks normalized rows and emits the stage-to-stage edges of each.
type Builder struct {
	stages StageColumns
}

// BuildStats describes one Build call.
type BuildStats struct {
	Rows        int
	EmptyLabels int
}

func NewBuilder(stages StageColumns) *Builder {
	return &Builder{stages: stages}
}

// Build emits, for every row, the four stage labels as nodes followed by the
// edges source->aggregate, aggregate->analyze and analyze->publish, each
// carrying the row's raw compliance value. Every sink receives the same
// sequence. Identical adjacent labels produce a self loop.
func (b *Builder) Build(tbl *table.Table, sinks ...EdgeSink) BuildStats {
	stats := BuildStats{}
	for _, row := range tbl.Rows {
		labels := [4]string{
			SanitizeLabel(tbl.Value(row, b.stages.Source)),
			SanitizeLabel(tbl.Value(row, b.stages.Aggregate)),
			SanitizeLabel(tbl.Value(row, b.stages.Analyze)),
			SanitizeLabel(tbl.Value(row, b.stages.Publish)),
		}
		compliance := tbl.Value(row, b.stages.Compliance)

		for _, l := range labels {
			if l == "" {
				stats.EmptyLabels++
			}
		}

		for _, sink := range sinks {
			for _, l := range labels {
				sink.AddNode(l)
			}
			for i := 0; i < len(labels)-1; i++ {
				sink.AddEdge(Edge{From: labels[i], To: labels[i+1], Compliance: compliance})
			}
		}
		stats.Rows++
	}

	if stats.EmptyLabels > 0 {
		zap.S().Warnf("%d cell(s) sanitized to an empty node label; they are kept as unnamed nodes", stats.EmptyLabels)
	}
	return stats
}
