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

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/dinerec/pkg/catalog"
)

func catalogCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Inspect restaurant catalogs",
		Commands: []*cli.Command{
			catalogShowCmd(st),
			catalogValidateCmd(st),
		},
	}
}

func catalogShowCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the catalog as a versioned document",
		Description: `Load the catalog and print it wrapped in a Catalog header. The output can be
fed back through --catalog or stored in a ConfigMap under the catalog.yaml key.

Examples:
  dinerec catalog show -t yaml -o catalog.yaml
  dinerec catalog show --catalog https://example.com/catalog.json -t table`,
		Flags: []cli.Flag{
			catalogFlag(),
			kubeconfigFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			loader, source, err := loaderFromCmd(st, cmd)
			if err != nil {
				return err
			}

			restaurants, err := loader.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load catalog from %q: %w", source, err)
			}

			return writeOutput(ctx, cmd, outFormat, catalog.NewDocument(restaurants, version))
		},
	}
}

func catalogValidateCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check that every catalog record is well formed",
		Description: `Load and validate the catalog. Records need a name, a cuisine and HH:MM
opening and closing times. Exits non-zero on the first invalid record.`,
		Flags: []cli.Flag{
			catalogFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loader, source, err := loaderFromCmd(st, cmd)
			if err != nil {
				return err
			}

			restaurants, err := loader.Load(ctx)
			if err != nil {
				return fmt.Errorf("catalog %q is invalid: %w", source, err)
			}

			slog.Debug("catalog validated", "source", source, "restaurants", len(restaurants))
			fmt.Fprintf(cmd.Root().Writer, "catalog %s is valid: %d restaurants\n", source, len(restaurants))
			return nil
		},
	}
}
