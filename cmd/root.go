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
	"strings"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/config"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/database"
	_ "github.com/GoogleCloudPlatform/lineage-diagrammer/internal/database/mysql"
	_ "github.com/GoogleCloudPlatform/lineage-diagrammer/internal/database/postgres"
	_ "github.com/GoogleCloudPlatform/lineage-diagrammer/internal/database/sqlserver"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/logging"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/utils"
	"github.com/spf13/cobra"
)

var (
	cfgFile         string
	requiredColumns string
	sheet           string
	direction       string
	sentinel        string
	logLevel        string
	logFormat       string

	// Database source flags
	dialect                        string
	host                           string
	port                           int
	username                       string
	password                       string
	dbName                         string
	sslMode                        string
	cloudSQLInstanceConnectionName string
	cloudSQLUsePrivateIP           bool
	sourceTable                    string
	sourceQuery                    string
	sourceQueryFile                string
)

// appConfig is the resolved configuration of the running command.
var appConfig *config.Config

var flushLogs = func() {}

var rootCmd = &cobra.Command{
	Use:   "lineage-diagrammer",
	Short: "Render data lineage inventories as flowcharts",
	Long: `lineage-diagrammer reads a lineage inventory (a spreadsheet, CSV file or
database table listing where data is sourced, aggregated, analyzed and
published) and renders the flow between platforms as a Mermaid flowchart,
a Graphviz graph or JSON.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initFlagsAndConfig,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { flushLogs(); return nil },
}

// initFlagsAndConfig resolves configuration from flags, environment and the
// config file, then installs the logger.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("required-columns"); f != nil && f.Changed {
		columns, err := utils.ParseColumnsFlag(requiredColumns)
		if err != nil {
			return fmt.Errorf("invalid --required-columns: %w", err)
		}
		cfg.Lineage.RequiredColumns = columns
	}

	if sourceQueryFile != "" {
		if cfg.Database.SourceQuery != "" {
			return fmt.Errorf("--source-query and --source-query-file are mutually exclusive")
		}
		query, err := utils.ReadQueryFile(sourceQueryFile)
		if err != nil {
			return err
		}
		cfg.Database.SourceQuery = query
	}

	flush, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	flushLogs = flush
	appConfig = cfg
	return nil
}

func validateDialect(dialect string) error {
	supportedDialects := database.SupportedDialects()
	for _, supportedDialect := range supportedDialects {
		if dialect == supportedDialect {
			return nil
		}
	}
	return fmt.Errorf("unsupported dialect: %s (only %s are supported)", dialect, strings.Join(supportedDialects, ", "))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: lineage.yaml in the working directory, if present)")
	rootCmd.PersistentFlags().StringVar(&requiredColumns, "required-columns", "", "Comma separated required columns; wrap names containing commas in [brackets]")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&direction, "direction", "LR", "Flowchart direction (LR, RL, TB, TD, BT)")
	rootCmd.PersistentFlags().StringVar(&sentinel, "sentinel", "N/A", "Replacement for empty cells")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")

	// Database source flags
	rootCmd.PersistentFlags().StringVar(&dialect, "dialect", "postgres", "Database dialect (postgres, mysql, sqlserver, cloudsqlpostgres, cloudsqlmysql, cloudsqlsqlserver)")
	rootCmd.PersistentFlags().StringVar(&host, "host", "localhost", "Database host")
	rootCmd.PersistentFlags().IntVar(&port, "port", 5432, "Database port")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "Database username")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Database password")
	rootCmd.PersistentFlags().StringVar(&dbName, "database", "", "Database name")
	rootCmd.PersistentFlags().StringVar(&sslMode, "sslmode", "disable", "SSL mode (postgres)")
	rootCmd.PersistentFlags().StringVar(&cloudSQLInstanceConnectionName, "cloudsql-instance-connection-name", "", "Cloud SQL instance connection name (for Cloud SQL dialects)")
	rootCmd.PersistentFlags().BoolVar(&cloudSQLUsePrivateIP, "cloudsql-use-private-ip", false, "Use private IP for Cloud SQL connection (Cloud SQL)")
	rootCmd.PersistentFlags().StringVar(&sourceTable, "source-table", "", "Table holding the lineage inventory, optionally schema qualified")
	rootCmd.PersistentFlags().StringVar(&sourceQuery, "source-query", "", "Query returning the lineage inventory")
	rootCmd.PersistentFlags().StringVar(&sourceQueryFile, "source-query-file", "", "File containing the query returning the lineage inventory")

	// Add subcommands
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(serveCmd)
}
