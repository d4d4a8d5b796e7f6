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

// Package defaults provides centralized configuration constants for dinerec.
//
// This package defines timeout values and cache durations used across the
// codebase. Centralizing these values keeps handlers, loaders and the server
// consistent.
//
// # Timeout Categories
//
//   - Handler timeouts: recommendation request processing, catalog load, history append
//   - Server timeouts: HTTP server configuration
//   - Kubernetes timeouts: ConfigMap catalog reads
//   - HTTP client timeouts: remote catalog downloads
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
//	defer cancel()
package defaults
