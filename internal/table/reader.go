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

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format identifies the encoding of a tabular input.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
)

// ReadOptions tunes how an input is decoded.
type ReadOptions struct {
	// Sheet selects the workbook sheet; empty means the first sheet.
	Sheet string
}

// ParseFormat maps a user supplied type name or file extension to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "xlsx", "xlsm", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "tsv", "tab":
		return FormatTSV, nil
	default:
		return "", fmt.Errorf("unsupported input type %q (supported: xlsx, xlsm, csv, tsv)", name)
	}
}

// DetectFormat infers the format from a file name's extension.
func DetectFormat(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer input type of %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// ReadFile opens path and decodes it according to its extension.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, &ReadError{Source: path, Msg: "unknown file type", Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Source: path, Msg: "failed to open file", Err: err}
	}
	defer f.Close()
	return Read(f, path, format, opts)
}

// Read decodes r as format. source names the input in errors and logs.
func Read(r io.Reader, source string, format Format, opts ReadOptions) (*Table, error) {
	var (
		t   *Table
		err error
	)
	switch format {
	case FormatXLSX:
		t, err = readExcel(r, source, opts)
	case FormatCSV:
		t, err = readDelimited(r, source, ',')
	case FormatTSV:
		t, err = readDelimited(r, source, '\t')
	default:
		return nil, &ReadError{Source: source, Msg: "unsupported format", Err: fmt.Errorf("%q", format)}
	}
	if err != nil {
		return nil, err
	}
	zap.S().Debugf("Read %d row(s) and %d column(s) from %s", t.Len(), len(t.Columns), source)
	return t, nil
}
