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
	"strings"
)

// Default column names of a lineage inventory.
const (
	ColumnUseCase        = "Use Case/Scenario"
	ColumnFunctionalArea = "Functional Area"
	ColumnDCL            = "DCL"
	ColumnSource         = "Where data is sourced from"
	ColumnAggregate      = "Platform used to aggregate data"
	ColumnAnalyze        = "Platform used to analyze data"
	ColumnPublish        = "Platform used to publish curated data"
	ColumnCompliance     = "Compliance"
)

// Sentinel replaces empty cells during normalization.
const Sentinel = "N/A"

// DefaultDirection is the flowchart orientation, left to right.
const DefaultDirection = "LR"

var validDirections = []string{"LR", "RL", "TB", "TD", "BT"}

// DefaultRequiredColumns returns the expected header, in report order.
func DefaultRequiredColumns() []string {
	return []string{
		ColumnUseCase,
		ColumnFunctionalArea,
		ColumnDCL,
		ColumnSource,
		ColumnAggregate,
		ColumnAnalyze,
		ColumnPublish,
		ColumnCompliance,
	}
}

// StageColumns names the columns that feed each pipeline stage.
type StageColumns struct {
	Source     string `mapstructure:"source"`
	Aggregate  string `mapstructure:"aggregate"`
	Analyze    string `mapstructure:"analyze"`
	Publish    string `mapstructure:"publish"`
	Compliance string `mapstructure:"compliance"`
}

// DefaultStageColumns returns the stage mapping of the default header.
func DefaultStageColumns() StageColumns {
	return StageColumns{
		Source:     ColumnSource,
		Aggregate:  ColumnAggregate,
		Analyze:    ColumnAnalyze,
		Publish:    ColumnPublish,
		Compliance: ColumnCompliance,
	}
}

// Options is the explicit configuration of one pipeline invocation.
type Options struct {
	RequiredColumns []string
	Stages          StageColumns
	Sentinel        string
	Direction       string
}

// DefaultOptions returns options matching the standard inventory layout.
func DefaultOptions() Options {
	return Options{
		RequiredColumns: DefaultRequiredColumns(),
		Stages:          DefaultStageColumns(),
		Sentinel:        Sentinel,
		Direction:       DefaultDirection,
	}
}

// Validate checks that the options describe a usable pipeline. Empty
// sentinel and direction fall back to their defaults.
func (o *Options) Validate() error {
	if len(o.RequiredColumns) == 0 {
		return &ConfigError{Msg: "required column list is empty"}
	}
	if o.Sentinel == "" {
		o.Sentinel = Sentinel
	}
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	o.Direction = strings.ToUpper(o.Direction)
	if !contains(validDirections, o.Direction) {
		return &ConfigError{Msg: fmt.Sprintf("unsupported direction %q (supported: %s)", o.Direction, strings.Join(validDirections, ", "))}
	}

	stages := map[string]string{
		"source":     o.Stages.Source,
		"aggregate":  o.Stages.Aggregate,
		"analyze":    o.Stages.Analyze,
		"publish":    o.Stages.Publish,
		"compliance": o.Stages.Compliance,
	}
	for _, stage := range []string{"source", "aggregate", "analyze", "publish", "compliance"} {
		col := stages[stage]
		if col == "" {
			return &ConfigError{Msg: fmt.Sprintf("no column configured for the %s stage", stage)}
		}
		if !contains(o.RequiredColumns, col) {
			return &ConfigError{Msg: fmt.Sprintf("%s column %q is not in the required column list", stage, col)}
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
