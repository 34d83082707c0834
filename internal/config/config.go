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
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/render"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Lineage  LineageConfig  `mapstructure:"lineage"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// LineageConfig holds the expected inventory layout
type LineageConfig struct {
	RequiredColumns []string             `mapstructure:"required_columns"`
	Stages          lineage.StageColumns `mapstructure:"stages"`
	Sentinel        string               `mapstructure:"sentinel"`
	Direction       string               `mapstructure:"direction"`
}

type InputConfig struct {
	Sheet string `mapstructure:"sheet"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Dialect                        string `mapstructure:"dialect"`
	Host                           string `mapstructure:"host"`
	Port                           int    `mapstructure:"port"`
	User                           string `mapstructure:"username"`
	Password                       string `mapstructure:"password"`
	DBName                         string `mapstructure:"name"`
	SSLMode                        string `mapstructure:"sslmode"`
	CloudSQLInstanceConnectionName string `mapstructure:"cloudsql_instance_connection_name"`
	UsePrivateIP                   bool   `mapstructure:"cloudsql_use_private_ip"`
	SourceTable                    string `mapstructure:"source_table"`
	SourceQuery                    string `mapstructure:"source_query"`
}

type ServerConfig struct {
	Addr           string `mapstructure:"addr"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	EnvPrefix             = "LINEAGE"
	DefaultOutputFormat   = "mermaid"
	DefaultServerAddr     = ":8080"
	DefaultMaxUploadBytes = 32 << 20
)

// configFileCandidates are probed in order when no --config is given.
var configFileCandidates = []string{"lineage.yaml", "lineage.yml", ".lineage.yaml"}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"sheet":                             "input.sheet",
	"format":                            "output.format",
	"out":                               "output.path",
	"direction":                         "lineage.direction",
	"sentinel":                          "lineage.sentinel",
	"log-level":                         "log.level",
	"log-format":                        "log.format",
	"addr":                              "server.addr",
	"max-upload-bytes":                  "server.max_upload_bytes",
	"dialect":                           "database.dialect",
	"host":                              "database.host",
	"port":                              "database.port",
	"username":                          "database.username",
	"password":                          "database.password",
	"database":                          "database.name",
	"sslmode":                           "database.sslmode",
	"cloudsql-instance-connection-name": "database.cloudsql_instance_connection_name",
	"cloudsql-use-private-ip":           "database.cloudsql_use_private_ip",
	"source-table":                      "database.source_table",
	"source-query":                      "database.source_query",
}

// GetConfig returns the default configuration.
func GetConfig() *Config {
	stages := lineage.DefaultStageColumns()
	return &Config{
		Lineage: LineageConfig{
			RequiredColumns: lineage.DefaultRequiredColumns(),
			Stages:          stages,
			Sentinel:        lineage.Sentinel,
			Direction:       lineage.DefaultDirection,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Database: DatabaseConfig{
			Dialect: "postgres",
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Server: ServerConfig{
			Addr:           DefaultServerAddr,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := GetConfig()
	v.SetDefault("lineage.required_columns", d.Lineage.RequiredColumns)
	v.SetDefault("lineage.stages.source", d.Lineage.Stages.Source)
	v.SetDefault("lineage.stages.aggregate", d.Lineage.Stages.Aggregate)
	v.SetDefault("lineage.stages.analyze", d.Lineage.Stages.Analyze)
	v.SetDefault("lineage.stages.publish", d.Lineage.Stages.Publish)
	v.SetDefault("lineage.stages.compliance", d.Lineage.Stages.Compliance)
	v.SetDefault("lineage.sentinel", d.Lineage.Sentinel)
	v.SetDefault("lineage.direction", d.Lineage.Direction)
	v.SetDefault("input.sheet", "")
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.path", "")
	v.SetDefault("database.dialect", d.Database.Dialect)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.sslmode", d.Database.SSLMode)
	v.SetDefault("database.cloudsql_instance_connection_name", "")
	v.SetDefault("database.cloudsql_use_private_ip", false)
	v.SetDefault("database.source_table", "")
	v.SetDefault("database.source_query", "")
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.max_upload_bytes", d.Server.MaxUploadBytes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load resolves configuration with precedence flags > environment
// (LINEAGE_*) > config file > defaults. cfgFile may be empty, in which case
// lineage.yaml in the working directory is used when present. Only flags
// explicitly set on the command line override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		for _, candidate := range configFileCandidates {
			if _, err := os.Stat(candidate); err == nil {
				cfgFile = candidate
				break
			}
		}
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that are not covered by lineage.Options.
func (c *Config) Validate() error {
	if _, err := render.For(c.Output.Format); err != nil {
		return fmt.Errorf("invalid output.format: %w", err)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	return nil
}

// LineageOptions returns the pipeline options described by the config.
func (c *Config) LineageOptions() lineage.Options {
	return lineage.Options{
		RequiredColumns: append([]string(nil), c.Lineage.RequiredColumns...),
		Stages:          c.Lineage.Stages,
		Sentinel:        c.Lineage.Sentinel,
		Direction:       c.Lineage.Direction,
	}
}
