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

// Package database reads lineage inventories kept in a relational database.
// Dialect handlers register themselves from their own subpackages.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/config"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"go.uber.org/zap"
)

// TableSource loads a lineage inventory from a database.
type TableSource interface {
	ReadTable(ctx context.Context, query string) (*table.Table, error)
	SourceQuery() (string, error)
	Ping(ctx context.Context) error
	Close() error
	GetConfig() config.DatabaseConfig
}

var _ TableSource = (*DB)(nil)

// DB holds the database connection pool and dialect handler.
type DB struct {
	Pool    *sql.DB
	Handler DialectHandler
	Config  config.DatabaseConfig
	Retry   RetryOptions
}

// DialectHandler creates pools and builds dialect specific SQL.
type DialectHandler interface {
	CreateCloudSQLPool(cfg config.DatabaseConfig) (*sql.DB, error)
	CreateStandardPool(cfg config.DatabaseConfig) (*sql.DB, error)
	QuoteIdentifier(name string) string
}

var (
	dialectHandlers = make(map[string]DialectHandler)
	mu              sync.RWMutex
)

func RegisterDialectHandler(dialect string, handler DialectHandler) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := dialectHandlers[dialect]; exists {
		zap.S().Warnf("Dialect handler for '%s' is being overwritten.", dialect)
	}
	dialectHandlers[dialect] = handler
}

func GetDialectHandler(dialect string) (DialectHandler, error) {
	mu.RLock()
	defer mu.RUnlock()
	handler, ok := dialectHandlers[dialect]
	if !ok {
		return nil, &ErrInvalidInput{Msg: fmt.Sprintf("unsupported database dialect: %s", dialect)}
	}
	return handler, nil
}

// SupportedDialects lists the registered dialect names, sorted.
func SupportedDialects() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(dialectHandlers))
	for name := range dialectHandlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New opens a pool for cfg.Dialect and verifies it with a ping, retrying
// transient connection failures.
func New(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	handler, err := GetDialectHandler(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	var pool *sql.DB
	if strings.HasPrefix(cfg.Dialect, "cloudsql") {
		pool, err = handler.CreateCloudSQLPool(cfg)
	} else {
		pool, err = handler.CreateStandardPool(cfg)
	}
	if err != nil {
		return nil, &ErrDatabaseConnection{Msg: fmt.Sprintf("failed to create database pool for dialect %s", cfg.Dialect), Err: err}
	}

	db := &DB{
		Pool:    pool,
		Handler: handler,
		Config:  cfg,
		Retry:   DefaultRetryOptions,
	}

	_, err = withRetry(ctx, db.Retry, func(ctx context.Context) (struct{}, error) {
		if pingErr := pool.PingContext(ctx); pingErr != nil {
			return struct{}{}, &ErrDatabaseConnection{Msg: "ping failed", Err: pingErr}
		}
		return struct{}{}, nil
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database for dialect %s: %w", cfg.Dialect, err)
	}
	return db, nil
}

func (db *DB) GetConfig() config.DatabaseConfig {
	return db.Config
}

func (db *DB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database connection pool is not initialized")
	}
	return db.Pool.PingContext(ctx)
}

func (db *DB) Close() error {
	if db.Pool != nil {
		return db.Pool.Close()
	}
	zap.S().Warn("Attempted to close a nil database connection pool.")
	return nil
}

// SourceQuery returns the configured query, or a SELECT of every column of
// the configured source table. Exactly one of the two must be set.
func (db *DB) SourceQuery() (string, error) {
	query := strings.TrimSpace(db.Config.SourceQuery)
	tableName := strings.TrimSpace(db.Config.SourceTable)
	switch {
	case query != "" && tableName != "":
		return "", &ErrInvalidInput{Msg: "source_query and source_table are mutually exclusive"}
	case query != "":
		return query, nil
	case tableName != "":
		if db.Handler == nil {
			return "", fmt.Errorf("dialect handler not initialized")
		}
		return SelectAllQuery(db.Handler, tableName), nil
	default:
		return "", &ErrInvalidInput{Msg: "either source_query or source_table is required"}
	}
}

// SelectAllQuery builds "SELECT * FROM <table>", quoting each dot separated
// part of a schema-qualified name.
func SelectAllQuery(h DialectHandler, tableName string) string {
	parts := strings.Split(tableName, ".")
	for i, p := range parts {
		parts[i] = h.QuoteIdentifier(strings.TrimSpace(p))
	}
	return fmt.Sprintf("SELECT * FROM %s", strings.Join(parts, "."))
}

// ReadTable runs query and returns its result set as a table. Result column
// names form the header; NULLs become empty cells.
func (db *DB) ReadTable(ctx context.Context, query string) (*table.Table, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database connection pool is not initialized")
	}
	startTime := time.Now()
	zap.S().Infof("Reading lineage rows from %s database %q...", db.Config.Dialect, db.Config.DBName)

	tbl, err := withRetry(ctx, db.Retry, func(ctx context.Context) (*table.Table, error) {
		return db.readTable(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	zap.S().Infof("Read %d row(s) in %s.", tbl.Len(), time.Since(startTime))
	return tbl, nil
}

func (db *DB) readTable(ctx context.Context, query string) (*table.Table, error) {
	rows, err := db.Pool.QueryContext(ctx, query)
	if err != nil {
		return nil, &ErrQueryExecution{Msg: "error querying lineage source", Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &ErrQueryExecution{Msg: "error reading result columns", Err: err}
	}

	var records [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &ErrInvalidInput{Msg: "error scanning lineage row", Err: err}
		}
		record := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &ErrQueryExecution{Msg: "error iterating lineage rows", Err: err}
	}
	return table.New(columns, records), nil
}
