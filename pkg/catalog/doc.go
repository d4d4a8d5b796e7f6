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

// Package catalog defines the restaurant record and the loaders that
// produce a validated catalog.
//
// Three producers implement Loader:
//   - StaticLoader serves an in-process list, DefaultRestaurants by default
//   - FileLoader reads a Catalog document from a path, URL or cm://namespace/name
//   - CachedLoader keeps the first successful load of another Loader
//
// A catalog document looks like:
//
//	kind: Catalog
//	apiVersion: dinerec.dev/v1
//	restaurants:
//	  - name: Pizza Hut
//	    cuisine: Italian
//	    address: 123 Main St
//	    openTime: "09:00"
//	    closeTime: "23:00"
//	    vegetarian: false
//	    delivery: true
//
// Records must carry a name, a cuisine and HH:MM opening and closing times.
// Any read, decode or validation failure is returned as a StructuredError
// with code CATALOG_UNAVAILABLE and matches ErrCatalogUnavailable.
package catalog
