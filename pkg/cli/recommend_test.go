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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type recommendOutput struct {
	Recommendations []map[string]any `json:"restaurantRecommendations" yaml:"restaurantRecommendations"`
}

func TestRecommendLateNight(t *testing.T) {
	out, err := runRoot(t, "recommend", "--at", "03:30", "--cuisine", "american", "--history-driver", "none")
	require.NoError(t, err)

	var got recommendOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Recommendations, 2)
	for _, r := range got.Recommendations {
		assert.Equal(t, "Very very Late Night Diner", r["name"])
		assert.Contains(t, r, "opening_time")
	}
}

func TestRecommendNoMatchIsNotAnError(t *testing.T) {
	out, err := runRoot(t, "recommend", "--at", "07:00", "--history-driver", "none")
	require.NoError(t, err)

	var got recommendOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotNil(t, got.Recommendations)
	assert.Empty(t, got.Recommendations)
}

func TestRecommendLegacyYAML(t *testing.T) {
	out, err := runRoot(t, "recommend", "--at", "08:30", "--vegetarian", "false",
		"--schema", "legacy", "--format", "yaml", "--history-driver", "none")
	require.NoError(t, err)

	var got recommendOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Day time", got.Recommendations[0]["name"])
	assert.Equal(t, "American", got.Recommendations[0]["style"])
	assert.NotContains(t, got.Recommendations[0], "delivery")
}

func TestRecommendTable(t *testing.T) {
	out, err := runRoot(t, "recommend", "--at", "12:00", "--cuisine", "japanese",
		"--format", "table", "--history-driver", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Sushi World")
}

func TestRecommendWritesHistoryAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.log")
	outPath := filepath.Join(dir, "recs.json")

	_, err := runRoot(t, "recommend", "--at", "12:00", "--cuisine", "italian",
		"--history-driver", "file", "--history-path", historyPath, "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var got recommendOutput
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Pizza Hut", got.Recommendations[0]["name"])

	hist, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(hist)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `cuisine="italian"`)
	assert.Contains(t, lines[0], "Pizza Hut")
}

func TestRecommendErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"recommend", "--format", "xml", "--history-driver", "none"}},
		{"bad time", []string{"recommend", "--at", "25:00", "--history-driver", "none"}},
		{"bad schema", []string{"recommend", "--schema", "v3", "--history-driver", "none"}},
		{"bad driver", []string{"recommend", "--history-driver", "kafka"}},
		{"missing catalog", []string{"recommend", "--catalog", "/does/not/exist.yaml", "--history-driver", "none"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRecommendRecordsNothingByDefault(t *testing.T) {
	_, err := runRoot(t, "recommend", "--at", "12:00")
	require.NoError(t, err)

	// runRoot leaves the working directory at its temp dir.
	_, err = os.Stat("history.log")
	assert.True(t, os.IsNotExist(err), "default CLI run must not create history.log, stat error: %v", err)
}

func TestRecommendHistoryPathSelectsFileDriver(t *testing.T) {
	historyPath := filepath.Join(t.TempDir(), "queries.log")

	_, err := runRoot(t, "recommend", "--at", "12:00", "--history-path", historyPath)
	require.NoError(t, err)

	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestRecommendHistoryDriverFromEnv(t *testing.T) {
	historyPath := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("DINEREC_HISTORY__DRIVER", "file")
	t.Setenv("DINEREC_HISTORY__PATH", historyPath)

	_, err := runRoot(t, "recommend", "--at", "12:00", "--cuisine", "japanese")
	require.NoError(t, err)

	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cuisine="japanese"`)
}

func TestRecommendPassesFiltersVerbatim(t *testing.T) {
	out, err := runRoot(t, "recommend", "--at", "12:00", "--cuisine", " italian")
	require.NoError(t, err)

	var got recommendOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Recommendations)
}
