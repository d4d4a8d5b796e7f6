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

package recommender

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mchmarny/dinerec/pkg/catalog"
)

// Criteria selects restaurants. Empty Cuisine or Vegetarian disables that
// filter.
type Criteria struct {
	Cuisine    string
	Vegetarian string
	Now        TimeOfDay
}

// Result holds matching restaurants in catalog order.
type Result struct {
	Restaurants []catalog.Restaurant
}

// Empty reports whether nothing matched.
func (r *Result) Empty() bool {
	return r == nil || len(r.Restaurants) == 0
}

// Recommend returns every restaurant that matches c and is open at c.Now.
// Cuisine compares after Unicode lower-casing both sides. Vegetarian compares against the
// textual form of the flag, so "true" and "TRUE" match but "yes" matches
// nothing. A record with malformed hours aborts the whole evaluation.
func Recommend(restaurants []catalog.Restaurant, c Criteria) (*Result, error) {
	res := &Result{Restaurants: []catalog.Restaurant{}}

	// A Caser is not safe for concurrent use; one per evaluation.
	lower := cases.Lower(language.Und)
	cuisine := lower.String(c.Cuisine)

	for _, r := range restaurants {
		if c.Cuisine != "" && lower.String(r.Cuisine) != cuisine {
			continue
		}
		if c.Vegetarian != "" && !strings.EqualFold(strconv.FormatBool(r.Vegetarian), c.Vegetarian) {
			continue
		}
		open, err := IsOpen(r, c.Now)
		if err != nil {
			return nil, err
		}
		if !open {
			continue
		}
		res.Restaurants = append(res.Restaurants, r)
	}
	return res, nil
}
