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
	"testing"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearCloudSQLEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"DB_USER", "DB_PASS", "DB_NAME", "INSTANCE_CONNECTION_NAME", "PRIVATE_IP"} {
		t.Setenv(env, "")
	}
}

func TestResolveCloudSQLParamsFromConfig(t *testing.T) {
	clearCloudSQLEnv(t)
	p, err := ResolveCloudSQLParams(config.DatabaseConfig{
		User:                           "lineage",
		Password:                       "secret",
		DBName:                         "inventory",
		CloudSQLInstanceConnectionName: "proj:region:inst",
		UsePrivateIP:                   true,
	})
	require.NoError(t, err)
	assert.Equal(t, CloudSQLParams{
		User:                   "lineage",
		Password:               "secret",
		DBName:                 "inventory",
		InstanceConnectionName: "proj:region:inst",
		UsePrivateIP:           true,
	}, p)
}

func TestResolveCloudSQLParamsEnvFallback(t *testing.T) {
	clearCloudSQLEnv(t)
	t.Setenv("DB_USER", "env-user")
	t.Setenv("DB_PASS", "env-pass")
	t.Setenv("DB_NAME", "env-db")
	t.Setenv("INSTANCE_CONNECTION_NAME", "p:r:i")
	t.Setenv("PRIVATE_IP", "TRUE")

	p, err := ResolveCloudSQLParams(config.DatabaseConfig{User: "cfg-user"})
	require.NoError(t, err)
	assert.Equal(t, "cfg-user", p.User)
	assert.Equal(t, "env-pass", p.Password)
	assert.Equal(t, "env-db", p.DBName)
	assert.Equal(t, "p:r:i", p.InstanceConnectionName)
	assert.True(t, p.UsePrivateIP)
}

func TestResolveCloudSQLParamsMissing(t *testing.T) {
	clearCloudSQLEnv(t)
	_, err := ResolveCloudSQLParams(config.DatabaseConfig{})
	var invalid *ErrInvalidInput
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "user, database, instance connection name")
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", " On "} {
		assert.True(t, isTruthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "No"} {
		assert.False(t, isTruthy(v), v)
	}
}
