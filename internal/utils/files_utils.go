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
package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadQueryFile reads a single SQL statement from filePath. A trailing
// semicolon is dropped; more than one statement is an error.
func ReadQueryFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	var statements []string
	for _, stmt := range strings.Split(string(content), ";\n") {
		stmt = strings.TrimSuffix(strings.TrimSpace(stmt), ";")
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	switch len(statements) {
	case 0:
		return "", fmt.Errorf("no SQL statement found in %s", filePath)
	case 1:
		return statements[0], nil
	default:
		return "", fmt.Errorf("%s contains %d statements, expected one", filePath, len(statements))
	}
}

// DefaultOutputPath derives the output file for an input: the input path
// with its extension replaced by ext. Database sources pass the database
// name, which gets a "_lineage" suffix.
func DefaultOutputPath(input, ext string, fromDatabase bool) string {
	if fromDatabase {
		return fmt.Sprintf("%s_lineage%s", input, ext)
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// WriteOutput writes data to path, or to stdout when path is "-".
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// ConfirmAction asks a yes/no question on out and reads the answer from in.
func ConfirmAction(in io.Reader, out io.Writer, question string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "%s (yes/no): ", question)
	text, _ := reader.ReadString('\n')
	action := strings.TrimSpace(strings.ToLower(text))
	return action == "yes" || action == "y"
}

// ParseColumnsFlag splits a comma separated column list. Names containing
// commas can be wrapped in square brackets: "A,[B, C],D".
func ParseColumnsFlag(columnsFlag string) ([]string, error) {
	if strings.TrimSpace(columnsFlag) == "" {
		return nil, nil
	}

	parts, err := SplitOutsideBrackets(columnsFlag)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
			part = strings.TrimSpace(part[1 : len(part)-1])
		}
		if part == "" {
			return nil, fmt.Errorf("empty column name in %q", columnsFlag)
		}
		columns = append(columns, part)
	}
	return columns, nil
}

// SplitOutsideBrackets splits s on commas that are not within square brackets.
func SplitOutsideBrackets(s string) ([]string, error) {
	var result []string
	var current strings.Builder
	inBrackets := false

	for _, char := range s {
		switch char {
		case '[':
			if inBrackets {
				return nil, fmt.Errorf("nested bracket in: %s", s)
			}
			inBrackets = true
			current.WriteRune(char)
		case ']':
			if !inBrackets {
				return nil, fmt.Errorf("unexpected closing bracket in: %s", s)
			}
			inBrackets = false
			current.WriteRune(char)
		case ',':
			if inBrackets {
				current.WriteRune(char)
			} else {
				result = append(result, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}
	if inBrackets {
		return nil, fmt.Errorf("missing closing bracket in: %s", s)
	}

	// Add the last part
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result, nil
}
