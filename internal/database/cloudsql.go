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
package database

import (
	"fmt"
	"os"
	"strings"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/config"
)

// CloudSQLParams are the settings needed to dial a Cloud SQL instance.
type CloudSQLParams struct {
	User                   string
	Password               string
	DBName                 string
	InstanceConnectionName string
	UsePrivateIP           bool
}

// ResolveCloudSQLParams reads connection settings from cfg, falling back to
// the DB_USER, DB_PASS, DB_NAME, INSTANCE_CONNECTION_NAME and PRIVATE_IP
// environment variables for unset values.
func ResolveCloudSQLParams(cfg config.DatabaseConfig) (CloudSQLParams, error) {
	p := CloudSQLParams{
		User:                   firstNonEmpty(cfg.User, os.Getenv("DB_USER")),
		Password:               firstNonEmpty(cfg.Password, os.Getenv("DB_PASS")),
		DBName:                 firstNonEmpty(cfg.DBName, os.Getenv("DB_NAME")),
		InstanceConnectionName: firstNonEmpty(cfg.CloudSQLInstanceConnectionName, os.Getenv("INSTANCE_CONNECTION_NAME")),
		UsePrivateIP:           cfg.UsePrivateIP || isTruthy(os.Getenv("PRIVATE_IP")),
	}

	var missing []string
	if p.User == "" {
		missing = append(missing, "user")
	}
	if p.DBName == "" {
		missing = append(missing, "database")
	}
	if p.InstanceConnectionName == "" {
		missing = append(missing, "instance connection name")
	}
	if len(missing) > 0 {
		return p, &ErrInvalidInput{Msg: fmt.Sprintf("missing required Cloud SQL connection parameter(s): %s", strings.Join(missing, ", "))}
	}
	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isTruthy(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v != "" && v != "false" && v != "0" && v != "no"
}
