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

	"github.com/xuri/excelize/v2"
)

// readExcel decodes a single sheet of an Office Open XML workbook. Only the
// selected sheet is read; other sheets are ignored.
func readExcel(r io.Reader, source string, opts ReadOptions) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ReadError{Source: source, Msg: "not a readable workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ReadError{Source: source, Msg: "workbook has no sheets"}
	}

	sheet := sheets[0]
	if opts.Sheet != "" {
		found := false
		for _, s := range sheets {
			if s == opts.Sheet {
				found = true
				break
			}
		}
		if !found {
			return nil, &ReadError{Source: source, Msg: fmt.Sprintf("sheet %q not found", opts.Sheet)}
		}
		sheet = opts.Sheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ReadError{Source: source, Msg: fmt.Sprintf("failed to read sheet %q", sheet), Err: err}
	}
	if len(rows) == 0 {
		return nil, &ReadError{Source: source, Msg: fmt.Sprintf("sheet %q has no header row", sheet)}
	}
	return New(rows[0], rows[1:]), nil
}
