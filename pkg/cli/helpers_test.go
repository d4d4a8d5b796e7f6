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
	"bytes"
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/dinerec/pkg/recommender"
	"github.com/mchmarny/dinerec/pkg/serializer"
)

// runRoot executes the root command from an empty working directory and
// returns what it wrote to stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("DINEREC_CONFIG", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.Writer = &out
	root.ErrWriter = &bytes.Buffer{}

	err := root.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestFixedClock(t *testing.T) {
	day := time.Date(2025, 6, 1, 17, 45, 12, 0, time.UTC)
	tod, err := recommender.ParseTimeOfDay("03:30")
	if err != nil {
		t.Fatal(err)
	}

	got := fixedClock(day, tod)()
	want := time.Date(2025, 6, 1, 3, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("fixedClock() = %v, want %v", got, want)
	}
	if recommender.ClockTime(got) != tod {
		t.Errorf("ClockTime() = %v, want %v", recommender.ClockTime(got), tod)
	}
}

func TestFixedClockDSTDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	tests := []struct {
		name string
		day  time.Time
		at   string
	}{
		{"spring forward early morning", time.Date(2024, 3, 10, 18, 0, 0, 0, loc), "03:30"},
		{"spring forward noon", time.Date(2024, 3, 10, 18, 0, 0, 0, loc), "12:00"},
		{"fall back noon", time.Date(2024, 11, 3, 18, 0, 0, 0, loc), "12:00"},
		{"fall back late night", time.Date(2024, 11, 3, 18, 0, 0, 0, loc), "23:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := recommender.ParseTimeOfDay(tt.at)
			if err != nil {
				t.Fatal(err)
			}

			got := fixedClock(tt.day, tod)()
			if recommender.ClockTime(got) != tod {
				t.Errorf("--at %s evaluates as %s", tt.at, recommender.ClockTime(got))
			}
			if got.Day() != tt.day.Day() {
				t.Errorf("day = %d, want %d", got.Day(), tt.day.Day())
			}
		})
	}
}

func TestRootVersion(t *testing.T) {
	root := newRootCmd()
	if root.Name != "dinerec" {
		t.Errorf("Name = %q", root.Name)
	}
	if root.Version == "" {
		t.Error("Version should not be empty")
	}

	names := map[string]bool{}
	for _, c := range root.Commands {
		names[c.Name] = true
	}
	for _, want := range []string{"recommend", "catalog"} {
		if !names[want] {
			t.Errorf("missing %s command", want)
		}
	}
}
