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
package cmd

import (
	"fmt"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/render"
	"github.com/spf13/cobra"
)

var previewRows int

var summaryCmd = &cobra.Command{
	Use:     "summary [inventory-file]",
	Short:   "Print unique value counts for each required column",
	Long:    `Validates and normalizes a lineage inventory, then prints how many distinct values each required column holds, optionally followed by a preview of the first rows.`,
	Example: `./lineage-diagrammer summary inventory.xlsx --preview 5`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}
	if previewRows < 0 {
		return fmt.Errorf("--preview must not be negative, got %d", previewRows)
	}

	in, err := loadInput(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	res, err := lineage.Process(cfg.LineageOptions(), in.table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d row(s), %d node(s), %d edge(s)\n",
		in.name, res.Stats.Rows, res.Graph.NodeCount(), res.Edges.Len())
	render.WriteSummary(out, res.Summary)
	if previewRows > 0 {
		fmt.Fprintln(out)
		render.WritePreview(out, res.Table, previewRows)
	}
	return nil
}

func init() {
	summaryCmd.Flags().IntVar(&previewRows, "preview", 0, "Also print the first N normalized rows")
}
