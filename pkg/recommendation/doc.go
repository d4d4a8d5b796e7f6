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

// Package recommendation answers restaurant queries.
//
// Service ties a catalog Loader, the pure recommender and a history Sink
// together. Handler exposes it over HTTP:
//
//	GET /recommend?cuisine=italian&vegetarian=false
//
//	200 {"restaurantRecommendations":[{"name":"Pizza Hut","cuisine":"Italian",...}]}
//	404 {"code":"NOT_FOUND","message":"No matching restaurant found",...}
//	500 {"code":"CATALOG_UNAVAILABLE",...} or {"code":"INVALID_TIME_FORMAT",...}
//
// Responses use the current schema (cuisine, opening_time, closing_time,
// delivery) or the legacy one (style, openHour, closeHour). The legacy
// "style" query parameter is accepted as an alias for "cuisine".
package recommendation
