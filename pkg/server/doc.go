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

// Package server provides the reusable HTTP server behind dinerecd.
//
// # Architecture
//
// Every registered handler runs inside the same middleware chain:
//
//   - Prometheus request metrics (dinerec_http_*)
//   - API version negotiation (X-API-Version)
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Token-bucket rate limiting (golang.org/x/time/rate)
//   - Request logging
//
// /health, /ready and /metrics are served outside the chain so probes and
// scrapes are never rate limited.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("dinerecd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/recommend": handler.ServeHTTP,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT, SIGTERM or context cancellation and then drains
// in-flight requests within Config.ShutdownTimeout.
//
// # Configuration
//
// NewConfig starts from the defaults in pkg/defaults and honours two
// environment variables:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown window (default 30)
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which
// render ErrorResponse and derive the HTTP status from the error code:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "No matching restaurant found",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T12:00:00Z",
//	  "retryable": false
//	}
package server
