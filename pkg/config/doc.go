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

// Package config loads dinerec configuration.
//
// Values are layered in order of increasing precedence:
//
//  1. built-in defaults (Default)
//  2. an optional YAML file (--config, DINEREC_CONFIG or ./dinerec.yaml)
//  3. DINEREC_ environment variables, with __ separating sections
//
// Example file:
//
//	server:
//	  port: 8080
//	  rate_limit: 100
//	  rate_limit_burst: 200
//	  shutdown_timeout: 30s
//	catalog:
//	  source: file
//	  path: cm://dinerec/catalog
//	  cache: true
//	response:
//	  schema: legacy
//	history:
//	  driver: sqlite
//	  path: /var/lib/dinerec/history.db
//	logging:
//	  level: debug
//
// The same catalog source from the environment:
//
//	DINEREC_CATALOG__SOURCE=file DINEREC_CATALOG__PATH=catalog.yaml dinerecd
package config
