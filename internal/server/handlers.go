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
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/render"
	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/table"
	"go.uber.org/zap"
)

// uploadField is the multipart form field carrying the inventory file.
const uploadField = "file"

type errorResponse struct {
	Error          string   `json:"error"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

type healthResponse struct {
	Status  string   `json:"status"`
	Formats []string `json:"formats"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Formats: render.Formats()})
}

// upload is an inventory file received in a request.
type upload struct {
	name   string
	format table.Format
	data   []byte
}

// handleLineage accepts an inventory as a multipart "file" field or as the
// raw request body. The input type comes from ?type= or the uploaded file
// name; ?format=, ?sheet= and ?direction= override configured defaults.
func (s *Server) handleLineage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = s.cfg.Output.Format
	}
	renderer, err := render.For(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	in, err := s.readUpload(r)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	opts := s.cfg.LineageOptions()
	if dir := q.Get("direction"); dir != "" {
		opts.Direction = dir
	}
	sheet := s.cfg.Input.Sheet
	if v := q.Get("sheet"); v != "" {
		sheet = v
	}

	tbl, err := table.Read(bytes.NewReader(in.data), in.name, in.format, table.ReadOptions{Sheet: sheet})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	res, err := lineage.Process(opts, tbl)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, res); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("render %s: %w", format, err))
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("error writing response", zap.Error(err))
	}
}

func (s *Server) readUpload(r *http.Request) (*upload, error) {
	typeParam := r.URL.Query().Get("type")

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
			return nil, &badRequestError{msg: "invalid multipart upload", err: err}
		}
		f, header, err := r.FormFile(uploadField)
		if err != nil {
			return nil, &badRequestError{msg: fmt.Sprintf("multipart field %q is required", uploadField), err: err}
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
		fmtName := typeParam
		if fmtName == "" {
			fmtName = header.Filename
		}
		format, err := detect(fmtName)
		if err != nil {
			return nil, err
		}
		return &upload{name: header.Filename, format: format, data: data}, nil
	}

	if typeParam == "" {
		return nil, &badRequestError{msg: "query parameter \"type\" is required for raw uploads"}
	}
	format, err := table.ParseFormat(typeParam)
	if err != nil {
		return nil, &badRequestError{msg: "unsupported input type", err: err}
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) == 0 {
		return nil, &badRequestError{msg: "empty body"}
	}
	return &upload{name: "request body", format: format, data: data}, nil
}

// detect accepts either a bare type name or a file name.
func detect(name string) (table.Format, error) {
	format, err := table.ParseFormat(name)
	if err == nil {
		return format, nil
	}
	format, err = table.DetectFormat(name)
	if err != nil {
		return "", &badRequestError{msg: "unsupported input type", err: err}
	}
	return format, nil
}

type badRequestError struct {
	msg string
	err error
}

func (e *badRequestError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *badRequestError) Unwrap() error {
	return e.err
}

// statusFor maps pipeline and input errors to HTTP status codes.
func statusFor(err error) int {
	var (
		maxErr     *http.MaxBytesError
		missingErr *lineage.MissingColumnsError
		readErr    *table.ReadError
		configErr  *lineage.ConfigError
		badReq     *badRequestError
	)
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &missingErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &readErr), errors.As(err, &configErr), errors.As(err, &badReq):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var missingErr *lineage.MissingColumnsError
	if errors.As(err, &missingErr) {
		resp.MissingColumns = missingErr.Missing
	}
	if status == http.StatusRequestEntityTooLarge {
		resp.Error = "payload exceeds upload limit"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.S().Warnf("Error encoding response: %v", err)
	}
}
