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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/time/rate"

	"github.com/mchmarny/dinerec/pkg/asset"
	"github.com/mchmarny/dinerec/pkg/catalog"
	"github.com/mchmarny/dinerec/pkg/config"
	"github.com/mchmarny/dinerec/pkg/history"
	"github.com/mchmarny/dinerec/pkg/logging"
	"github.com/mchmarny/dinerec/pkg/recommendation"
	"github.com/mchmarny/dinerec/pkg/server"
)

const (
	name           = "dinerecd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/dinerec/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads configuration and runs the API server until SIGINT or SIGTERM.
func Serve() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return ServeWithConfig(context.Background(), cfg)
}

// ServeWithConfig runs the API server with cfg until ctx is canceled or a
// termination signal arrives. LOG_LEVEL, when set, wins over cfg.
func ServeWithConfig(ctx context.Context, cfg *config.Config) error {
	level := cfg.Logging.Level
	if v := os.Getenv(logging.EnvLogLevel); v != "" {
		level = v
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"catalog", cfg.Catalog.Source,
		"schema", cfg.Response.Schema,
		"history", cfg.History.Driver,
	)

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Warn("failed to close history sink", "error", err)
		}
	}()

	s := server.New(
		server.WithConfig(serverConfig(cfg)),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(a.routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// app holds the components behind the API routes.
type app struct {
	handler *recommendation.Handler
	sink    history.Sink
}

func newApp(cfg *config.Config) (*app, error) {
	loader, err := catalog.NewLoader(cfg.Catalog.Source, cfg.Catalog.Path, cfg.Catalog.Kubeconfig, cfg.Catalog.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog loader: %w", err)
	}

	schema, err := recommendation.ParseSchema(cfg.Response.Schema)
	if err != nil {
		return nil, err
	}

	sink, err := history.New(cfg.History.Driver, cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history sink: %w", err)
	}

	svc := recommendation.NewService(loader, sink)
	return &app{
		handler: recommendation.NewHandler(svc, schema),
		sink:    sink,
	}, nil
}

func (a *app) routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/recommend":          a.handler.ServeHTTP,
		"/v1/recommendations": a.handler.ServeHTTP,
		"/favicon.ico":        asset.FaviconHandler,
	}
}

func (a *app) Close() error {
	return a.sink.Close()
}

// serverConfig maps cfg onto the server defaults. PORT and
// SHUTDOWN_TIMEOUT_SECONDS still take precedence.
func serverConfig(cfg *config.Config) *server.Config {
	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	sc.Address = cfg.Server.Address
	sc.Port = cfg.Server.Port
	sc.RateLimit = rate.Limit(cfg.Server.RateLimit)
	sc.RateLimitBurst = cfg.Server.RateLimitBurst
	sc.ShutdownTimeout = cfg.Server.ShutdownTimeout
	sc.ApplyEnv()
	return sc
}
