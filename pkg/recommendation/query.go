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
	"net/http"
)

// Query parameter names.
const (
	ParamCuisine    = "cuisine"
	ParamStyle      = "style"
	ParamVegetarian = "vegetarian"
)

// Query is a recommendation request. Empty fields do not filter.
type Query struct {
	Cuisine    string `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Vegetarian string `json:"vegetarian,omitempty" yaml:"vegetarian,omitempty"`
}

// ParseQuery reads the query parameters of r verbatim. The legacy "style"
// parameter is accepted when "cuisine" is absent.
func ParseQuery(r *http.Request) Query {
	v := r.URL.Query()
	cuisine := v.Get(ParamCuisine)
	if cuisine == "" {
		cuisine = v.Get(ParamStyle)
	}
	return Query{
		Cuisine:    cuisine,
		Vegetarian: v.Get(ParamVegetarian),
	}
}
