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
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/dinerec/pkg/history"
	"github.com/mchmarny/dinerec/pkg/recommendation"
	"github.com/mchmarny/dinerec/pkg/recommender"
)

func recommendCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		Aliases:               []string{"rec"},
		EnableShellCompletion: true,
		Usage:                 "List restaurants that are open and match the given filters",
		Description: `Evaluate the catalog at the current time (or --at) and print the open
restaurants matching the cuisine and vegetarian filters. Empty filters match
everything. Queries are recorded only when a history sink is configured.

Examples:
  dinerec recommend --cuisine american
  dinerec recommend --vegetarian true --at 21:30 --format table
  dinerec recommend --catalog cm://dinerec/catalog --schema legacy -o recs.yaml -t yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cuisine",
				Usage: "Cuisine to match, case-insensitive (e.g., italian)",
			},
			&cli.StringFlag{
				Name:  "vegetarian",
				Usage: `Vegetarian flag to match, "true" or "false"`,
			},
			&cli.StringFlag{
				Name:  "at",
				Usage: "Time of day to evaluate as HH:MM (default: now)",
			},
			&cli.StringFlag{
				Name:  "schema",
				Usage: "Response field naming: current or legacy (default: response.schema from config)",
			},
			&cli.StringFlag{
				Name: "history-driver",
				Usage: fmt.Sprintf("History sink (supported values: %s; default: history.driver when set in config or env, else none)",
					strings.Join(history.SupportedDrivers(), ", ")),
			},
			&cli.StringFlag{
				Name:  "history-path",
				Usage: "History file or database path (default: history.path from config)",
			},
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

			schemaName := cmd.String("schema")
			if schemaName == "" {
				schemaName = st.cfg.Response.Schema
			}
			schema, err := recommendation.ParseSchema(schemaName)
			if err != nil {
				return err
			}

			clock, err := clockFromCmd(cmd)
			if err != nil {
				return err
			}

			loader, source, err := loaderFromCmd(st, cmd)
			if err != nil {
				return err
			}

			driver, path := historyFromCmd(st, cmd)
			sink, err := history.New(driver, path)
			if err != nil {
				return fmt.Errorf("failed to open history sink: %w", err)
			}
			defer func() {
				if err := sink.Close(); err != nil {
					slog.Warn("failed to close history sink", "error", err)
				}
			}()

			svc := recommendation.NewService(loader, sink)
			svc.Clock = clock

			q := recommendation.Query{
				Cuisine:    cmd.String("cuisine"),
				Vegetarian: cmd.String("vegetarian"),
			}

			slog.Debug("querying catalog", "source", source, "cuisine", q.Cuisine, "vegetarian", q.Vegetarian)

			res, err := svc.Query(ctx, q)
			if err != nil {
				return fmt.Errorf("error building recommendation: %w", err)
			}
			if res.Empty() {
				slog.Info(recommendation.NoMatchMessage, "cuisine", q.Cuisine, "vegetarian", q.Vegetarian)
			}

			return writeOutput(ctx, cmd, outFormat, recommendation.Render(res.Restaurants, schema))
		},
	}
}

// historyFromCmd resolves the history sink. Flags win, then driver and
// path from the config file or environment. Without either the CLI records
// nothing; --history-path alone selects the file driver.
func historyFromCmd(st *state, cmd *cli.Command) (driver, path string) {
	driver, path = history.DriverNone, st.cfg.History.Path
	if st.cfg.IsSet("history.driver") {
		driver = st.cfg.History.Driver
	}
	if p := cmd.String("history-path"); p != "" {
		path = p
		if !st.cfg.IsSet("history.driver") {
			driver = history.DriverFile
		}
	}
	if d := cmd.String("history-driver"); d != "" {
		driver = d
	}
	return driver, path
}

// clockFromCmd returns the system clock, or today's date at --at.
func clockFromCmd(cmd *cli.Command) (func() time.Time, error) {
	at := cmd.String("at")
	if at == "" {
		return time.Now, nil
	}

	tod, err := recommender.ParseTimeOfDay(at)
	if err != nil {
		return nil, fmt.Errorf("invalid --at value: %w", err)
	}
	return fixedClock(time.Now(), tod), nil
}

// fixedClock pins the clock to tod on day's date. The instant is built from
// wall-clock fields so DST transitions do not shift the time of day.
func fixedClock(day time.Time, tod recommender.TimeOfDay) func() time.Time {
	y, m, d := day.Date()
	secs := int(tod)
	t := time.Date(y, m, d, secs/3600, secs%3600/60, secs%60, 0, day.Location())
	return func() time.Time { return t }
}
