// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/dinerec/pkg/catalog"
	"github.com/mchmarny/dinerec/pkg/serializer"
)

// Flags are built per command; urfave/cli keeps parsed state on the flag.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage: `Path/URI to a restaurant catalog (default: catalog settings from config).
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "Path to kubeconfig file for cm:// sources (default: KUBECONFIG, ~/.kube/config or in-cluster)",
	}
}

// parseOutputFormat returns the --format value or an error when it is not
// supported.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)", f, serializer.SupportedFormats())
	}
	return f, nil
}

// loaderFromCmd builds the catalog loader. --catalog selects a file source
// and wins over the config file.
func loaderFromCmd(st *state, cmd *cli.Command) (catalog.Loader, string, error) {
	source := st.cfg.Catalog.Source
	path := st.cfg.Catalog.Path
	kubeconfig := st.cfg.Catalog.Kubeconfig

	if p := cmd.String("catalog"); p != "" {
		source, path = catalog.SourceFile, p
	}
	if k := cmd.String("kubeconfig"); k != "" {
		kubeconfig = k
	}

	l, err := catalog.NewLoader(source, path, kubeconfig, false)
	if err != nil {
		return nil, "", err
	}
	if source == catalog.SourceFile {
		return l, path, nil
	}
	return l, source, nil
}

// writeOutput serializes v to --output (or stdout) in format.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	out := cmd.String("output")
	if out == "" {
		w := serializer.NewWriter(format, cmd.Root().Writer)
		return w.Serialize(ctx, v)
	}

	w, err := serializer.NewFileWriterOrStdout(format, out)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()
	return w.Serialize(ctx, v)
}
