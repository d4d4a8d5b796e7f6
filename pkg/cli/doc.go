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

// Package cli implements the dinerec command-line interface.
//
// # Commands
//
// recommend - List open restaurants:
//
//	dinerec recommend [--cuisine NAME] [--vegetarian true|false] [--at HH:MM]
//	                  [--catalog PATH|URL|cm://ns/name] [--schema current|legacy]
//	                  [--history-driver file|sqlite|none] [--history-path PATH]
//	                  [--output FILE] [--format json|yaml|table]
//
// An empty result prints an empty list and logs "No matching restaurant found";
// it is not an error.
//
// catalog show - Print the catalog as a versioned Catalog document:
//
//	dinerec catalog show [--catalog SOURCE] [--output FILE] [--format json|yaml|table]
//
// catalog validate - Load and validate a catalog:
//
//	dinerec catalog validate --catalog catalog.yaml
//
// # Global Flags
//
//	--config      Config file (DINEREC_CONFIG, default ./dinerec.yaml when present)
//	--log-level   Log level (LOG_LEVEL, default logging.level from config)
//	--help, -h    Show command help
//	--version, -v Show version information
//
// Flags win over the config file, which wins over built-in defaults. See
// pkg/config for the DINEREC_ environment variables.
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, unreadable or invalid catalog, invalid time data
package cli
