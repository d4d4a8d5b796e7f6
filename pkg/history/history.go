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

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mchmarny/dinerec/pkg/catalog"
)

// Driver names accepted by New.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverNone   = "none"
)

// Entry is one recorded query and its outcome.
type Entry struct {
	Timestamp   time.Time
	Cuisine     string
	Vegetarian  string
	Restaurants []catalog.Restaurant
}

// Sink records query history. Append must be safe for concurrent use and
// must never persist a partial entry.
type Sink interface {
	Append(ctx context.Context, e Entry) error
	Close() error
}

// New returns the sink for driver. path is ignored for DriverNone.
func New(driver, path string) (Sink, error) {
	switch driver {
	case DriverFile:
		return NewFileSink(path)
	case DriverSQLite:
		return NewSQLiteSink(path)
	case DriverNone, "":
		return NopSink{}, nil
	default:
		return nil, fmt.Errorf("unsupported history driver %q", driver)
	}
}

// SupportedDrivers lists the accepted driver names.
func SupportedDrivers() []string {
	return []string{DriverFile, DriverSQLite, DriverNone}
}

// FormatLine renders e as a single tab-separated line without a trailing
// newline:
//
//	2025-01-15T10:30:00Z	cuisine="italian"	vegetarian=""	recommendations=[{...}]
func FormatLine(e Entry) (string, error) {
	recs, err := renderRestaurants(e.Restaurants)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))
	b.WriteString("\tcuisine=")
	b.WriteString(strconv.Quote(e.Cuisine))
	b.WriteString("\tvegetarian=")
	b.WriteString(strconv.Quote(e.Vegetarian))
	b.WriteString("\trecommendations=")
	b.WriteString(recs)
	return b.String(), nil
}

func renderRestaurants(rs []catalog.Restaurant) (string, error) {
	if rs == nil {
		rs = []catalog.Restaurant{}
	}
	data, err := json.Marshal(rs)
	if err != nil {
		return "", fmt.Errorf("failed to render recommendations: %w", err)
	}
	return string(data), nil
}

// NopSink discards every entry.
type NopSink struct{}

// Append implements Sink.
func (NopSink) Append(context.Context, Entry) error { return nil }

// Close implements Sink.
func (NopSink) Close() error { return nil }
