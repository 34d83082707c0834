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

// MissingColumnsError is returned when the input header lacks required columns.
type MissingColumnsError struct {
	Missing []string
}

// ConfigError represents invalid pipeline options
type ConfigError struct {
	Msg string
	Err error
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing expected columns: %s", strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid lineage options: %s", e.Msg)
	}
	return fmt.Sprintf("invalid lineage options: %s: %v", e.Msg, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
