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

package recommendation

import (
	"fmt"

	"github.com/mchmarny/dinerec/pkg/catalog"
)

// Schema selects the field naming of query responses.
type Schema string

const (
	// SchemaCurrent names fields cuisine, opening_time and closing_time
	// and includes delivery.
	SchemaCurrent Schema = "current"
	// SchemaLegacy names fields style, openHour and closeHour and omits
	// delivery.
	SchemaLegacy Schema = "legacy"
)

// ParseSchema validates a schema name. Empty selects SchemaCurrent.
func ParseSchema(s string) (Schema, error) {
	switch Schema(s) {
	case "", SchemaCurrent:
		return SchemaCurrent, nil
	case SchemaLegacy:
		return SchemaLegacy, nil
	default:
		return "", fmt.Errorf("unsupported response schema %q (want %s or %s)", s, SchemaCurrent, SchemaLegacy)
	}
}

// Response is the body of a successful query.
type Response struct {
	Recommendations []any `json:"restaurantRecommendations" yaml:"restaurantRecommendations"`
}

// CurrentItem is one recommendation in the current schema.
type CurrentItem struct {
	Name        string `json:"name" yaml:"name"`
	Cuisine     string `json:"cuisine" yaml:"cuisine"`
	Address     string `json:"address" yaml:"address"`
	OpeningTime string `json:"opening_time" yaml:"opening_time"`
	ClosingTime string `json:"closing_time" yaml:"closing_time"`
	Vegetarian  bool   `json:"vegetarian" yaml:"vegetarian"`
	Delivery    bool   `json:"delivery" yaml:"delivery"`
}

// LegacyItem is one recommendation in the legacy schema.
type LegacyItem struct {
	Name       string `json:"name" yaml:"name"`
	Style      string `json:"style" yaml:"style"`
	Address    string `json:"address" yaml:"address"`
	OpenHour   string `json:"openHour" yaml:"openHour"`
	CloseHour  string `json:"closeHour" yaml:"closeHour"`
	Vegetarian bool   `json:"vegetarian" yaml:"vegetarian"`
}

// Render converts restaurants to a Response in schema s.
func Render(restaurants []catalog.Restaurant, s Schema) Response {
	items := make([]any, 0, len(restaurants))
	for _, r := range restaurants {
		if s == SchemaLegacy {
			items = append(items, LegacyItem{
				Name:       r.Name,
				Style:      r.Cuisine,
				Address:    r.Address,
				OpenHour:   r.OpenTime,
				CloseHour:  r.CloseTime,
				Vegetarian: r.Vegetarian,
			})
			continue
		}
		items = append(items, CurrentItem{
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			Address:     r.Address,
			OpeningTime: r.OpenTime,
			ClosingTime: r.CloseTime,
			Vegetarian:  r.Vegetarian,
			Delivery:    r.Delivery,
		})
	}
	return Response{Recommendations: items}
}
