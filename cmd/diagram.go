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
	"bytes"
	"fmt"
	"os"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/render"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFormat string
	outputFile   string
	force        bool
	withSummary  bool
)

var diagramCmd = &cobra.Command{
	Use:   "diagram [inventory-file]",
	Short: "Render a lineage inventory as a diagram",
	Long: `Reads a lineage inventory from an .xlsx, .csv or .tsv file, or from a database
source when no file is given, and writes the flow between platforms as a Mermaid
flowchart (default), a Graphviz DOT graph or JSON.`,
	Example: `./lineage-diagrammer diagram inventory.xlsx
./lineage-diagrammer diagram inventory.csv --format dot --out - | dot -Tsvg > lineage.svg
./lineage-diagrammer diagram --dialect cloudsqlpostgres --username user --database governance --cloudsql-instance-connection-name my-project:my-region:my-instance --source-table lineage.inventory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiagram,
}

func runDiagram(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}

	renderer, err := render.For(cfg.Output.Format)
	if err != nil {
		return err
	}

	in, err := loadInput(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}

	zap.S().Infof("Starting diagram operation, input: %s, format: %s", in.name, cfg.Output.Format)
	res, err := lineage.Process(cfg.LineageOptions(), in.table)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, res); err != nil {
		return fmt.Errorf("failed to render %s output: %w", cfg.Output.Format, err)
	}

	outPath := cfg.Output.Path
	if outPath == "" {
		outPath = utils.DefaultOutputPath(in.name, renderer.Extension(), in.fromDatabase)
	}
	if outPath != "-" && !force {
		if _, statErr := os.Stat(outPath); statErr == nil {
			if !utils.ConfirmAction(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("%s already exists. Overwrite?", outPath)) {
				return fmt.Errorf("not overwriting existing file %s", outPath)
			}
		}
	}
	if err := utils.WriteOutput(outPath, cmd.OutOrStdout(), buf.Bytes()); err != nil {
		return err
	}
	if outPath != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "Diagram written to: %s\n", outPath)
	}

	if withSummary {
		render.WriteSummary(cmd.OutOrStdout(), res.Summary)
	}

	zap.S().Info("Diagram operation completed")
	return nil
}

func init() {
	diagramCmd.Flags().StringVarP(&outputFormat, "format", "f", "mermaid", "Output format (mermaid, dot, json)")
	diagramCmd.Flags().StringVarP(&outputFile, "out", "o", "", "File path to write the diagram to, or - for stdout (defaults to the input name with the format's extension)")
	diagramCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file without asking")
	diagramCmd.Flags().BoolVar(&withSummary, "summary", false, "Also print the per-column unique value counts")
}
