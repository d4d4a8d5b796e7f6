// Package api provides the HTTP API layer for the dinerec recommendation service.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// loads configuration, builds the catalog loader, history sink and query
// handler, and registers them as routes.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/mchmarny/dinerec/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /recommend            - Open restaurants matching cuisine and vegetarian
//   - GET /v1/recommendations   - Same as /recommend
//   - GET /favicon.ico          - Embedded icon, cached for one day
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
//   - cuisine: case-insensitive cuisine match (alias: style)
//   - vegetarian: "true" or "false", case-insensitive
//
// Example:
//
//	curl "http://localhost:8080/recommend?cuisine=american&vegetarian=false"
//
// # Configuration
//
// Settings come from pkg/config (defaults, dinerec.yaml, DINEREC_ variables).
// These environment variables are also honored:
//   - PORT: HTTP server port, overrides server.port
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//   - LOG_LEVEL: logging level, overrides logging.level
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/dinerec/pkg/api.version=1.0.0'"
package api
