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
	"context"
	"fmt"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/config"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/database"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"go.uber.org/zap"
)

// input is a lineage table together with where it came from.
type input struct {
	table *table.Table
	// name is the file path, or the database name for database sources.
	name         string
	fromDatabase bool
}

// loadInput reads the inventory named by args, or the configured database
// source when no file is given.
func loadInput(ctx context.Context, cfg *config.Config, args []string) (*input, error) {
	if len(args) > 0 {
		tbl, err := table.ReadFile(args[0], table.ReadOptions{Sheet: cfg.Input.Sheet})
		if err != nil {
			return nil, err
		}
		return &input{table: tbl, name: args[0]}, nil
	}

	dbCfg := cfg.Database
	if dbCfg.SourceTable == "" && dbCfg.SourceQuery == "" {
		return nil, fmt.Errorf("an input file or a database source (--source-table, --source-query or --source-query-file) is required")
	}
	if err := validateDialect(dbCfg.Dialect); err != nil {
		return nil, err
	}

	zap.S().Infof("Starting database read, dialect: %s, database: %s", dbCfg.Dialect, dbCfg.DBName)
	db, err := database.New(ctx, dbCfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query, err := db.SourceQuery()
	if err != nil {
		return nil, err
	}
	tbl, err := db.ReadTable(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read lineage rows: %w", err)
	}

	name := dbCfg.DBName
	if name == "" {
		name = "database"
	}
	return &input{table: tbl, name: name, fromDatabase: true}, nil
}
