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
package table

import "fmt"

// ReadError represents input that cannot be parsed as tabular data.
type ReadError struct {
	Source string
	Msg    string
	Err    error
}

func (e *ReadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("error reading %s: %s", e.Source, e.Msg)
	}
	return fmt.Sprintf("error reading %s: %s: %v", e.Source, e.Msg, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
