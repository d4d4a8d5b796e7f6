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

package catalog

import (
	"context"

	"github.com/mchmarny/dinerec/pkg/errors"
	"github.com/mchmarny/dinerec/pkg/header"
)

// ErrCatalogUnavailable matches any error returned when a catalog cannot be
// read, decoded or validated.
var ErrCatalogUnavailable = errors.New(errors.ErrCodeCatalogUnavailable, "")

// Restaurant is one catalog record. Opening and closing times keep their
// textual HH:MM form; they are parsed at evaluation time.
type Restaurant struct {
	Name       string `json:"name" yaml:"name" validate:"required"`
	Cuisine    string `json:"cuisine" yaml:"cuisine" validate:"required"`
	Address    string `json:"address" yaml:"address"`
	OpenTime   string `json:"openTime" yaml:"openTime" validate:"required,timeofday"`
	CloseTime  string `json:"closeTime" yaml:"closeTime" validate:"required,timeofday"`
	Vegetarian bool   `json:"vegetarian" yaml:"vegetarian"`
	Delivery   bool   `json:"delivery" yaml:"delivery"`
}

// Document is the on-disk and ConfigMap form of a catalog.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Restaurants []Restaurant `json:"restaurants" yaml:"restaurants"`
}

// NewDocument wraps restaurants in a Catalog document stamped with version.
func NewDocument(restaurants []Restaurant, version string) *Document {
	d := &Document{Restaurants: restaurants}
	d.Init(header.KindCatalog, version)
	return d
}

// Loader produces the current catalog. Implementations must return a slice
// the caller may retain without affecting later loads.
type Loader interface {
	Load(ctx context.Context) ([]Restaurant, error)
}
