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
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	addr           string
	maxUploadBytes int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve diagram rendering over HTTP",
	Long: `Starts an HTTP server. POST an inventory to /api/v1/lineage, either as the
multipart field "file" or as the raw body with ?type=xlsx|csv|tsv, and choose
the output with ?format=mermaid|dot|json. GET /healthz reports liveness.`,
	Example: `./lineage-diagrammer serve --addr :8080
curl -F file=@inventory.xlsx 'http://localhost:8080/api/v1/lineage?format=dot'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, zap.L()).Serve(ctx)
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().Int64Var(&maxUploadBytes, "max-upload-bytes", 32<<20, "Maximum accepted upload size in bytes")
}
