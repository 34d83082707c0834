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

// Package render writes a lineage result in one of the supported output
// formats. The CLI and the HTTP server look renderers up by name with For.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/lineage"
)

// Renderer writes one representation of a processed lineage result.
type Renderer interface {
	Render(w io.Writer, res *lineage.Result) error
	// ContentType is the HTTP media type of the rendered output.
	ContentType() string
	// Extension is the conventional file extension, including the dot.
	Extension() string
}

// UnknownFormatError is returned by For for an unregistered format name.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q (supported: %s)", e.Format, strings.Join(Formats(), ", "))
}

var renderers = map[string]Renderer{
	"mermaid": Mermaid{},
	"dot":     DOT{},
	"json":    JSON{},
}

// For returns the renderer registered under format. Matching ignores case
// and surrounding space.
func For(format string) (Renderer, error) {
	r, ok := renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, &UnknownFormatError{Format: format}
	}
	return r, nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mermaid writes the flowchart definition produced by the pipeline.
type Mermaid struct{}

func (Mermaid) Render(w io.Writer, res *lineage.Result) error {
	if _, err := io.WriteString(w, res.Diagram); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (Mermaid) ContentType() string { return "text/plain; charset=utf-8" }

func (Mermaid) Extension() string { return ".mmd" }
