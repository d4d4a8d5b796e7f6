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

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/mchmarny/dinerec/pkg/catalog"
	"github.com/mchmarny/dinerec/pkg/defaults"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "DINEREC_"

	// PathEnvVar names the config file when no explicit path is given.
	PathEnvVar = EnvPrefix + "CONFIG"

	// DefaultPath is used when present in the working directory.
	DefaultPath = "dinerec.yaml"

	// envNestingDelimiter separates sections in environment variable names,
	// e.g. DINEREC_CATALOG__SOURCE -> catalog.source.
	envNestingDelimiter = "__"
)

// Config is the complete service and CLI configuration. Defaults describe
// the server; the CLI records no history unless asked to.
type Config struct {
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Catalog  CatalogConfig  `koanf:"catalog" validate:"required"`
	Response ResponseConfig `koanf:"response" validate:"required"`
	History  HistoryConfig  `koanf:"history" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`

	// explicit holds the keys set by the config file or environment.
	explicit map[string]bool
}

// IsSet reports whether key (e.g. "history.driver") was set by the config
// file or the environment rather than taken from Default.
func (c *Config) IsSet(key string) bool {
	return c.explicit[key]
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address         string        `koanf:"address"`
	Port            int           `koanf:"port" validate:"min=0,max=65535"`
	RateLimit       float64       `koanf:"rate_limit" validate:"gt=0"`
	RateLimitBurst  int           `koanf:"rate_limit_burst" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// CatalogConfig selects where restaurants come from. Path accepts a file
// path, an HTTP(S) URL or a cm://namespace/name ConfigMap URI.
type CatalogConfig struct {
	Source     string `koanf:"source" validate:"oneof=static file"`
	Path       string `koanf:"path" validate:"required_if=Source file"`
	Cache      bool   `koanf:"cache"`
	Kubeconfig string `koanf:"kubeconfig"`
}

// ResponseConfig selects the query response field naming.
type ResponseConfig struct {
	Schema string `koanf:"schema" validate:"oneof=legacy current"`
}

// HistoryConfig selects the query history sink.
type HistoryConfig struct {
	Driver string `koanf:"driver" validate:"oneof=file sqlite none"`
	Path   string `koanf:"path" validate:"required_unless=Driver none"`
}

// LoggingConfig sets the log level.
type LoggingConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			RateLimit:       100,
			RateLimitBurst:  200,
			ShutdownTimeout: defaults.ServerShutdownTimeout,
		},
		Catalog: CatalogConfig{
			Source: catalog.SourceStatic,
		},
		Response: ResponseConfig{
			Schema: "current",
		},
		History: HistoryConfig{
			Driver: "file",
			Path:   "history.log",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load layers the defaults, an optional YAML file and DINEREC_ environment
// variables, then validates the result. An empty path falls back to
// DINEREC_CONFIG and then to dinerec.yaml when it exists. An explicit path
// that does not exist is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// File and environment values are collected separately so the keys they
	// set can be told apart from defaults.
	overrides := koanf.New(".")

	configPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := overrides.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := overrides.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := k.Merge(overrides); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if keys := overrides.Keys(); len(keys) > 0 {
		cfg.explicit = make(map[string]bool, len(keys))
		for _, key := range keys {
			cfg.explicit[key] = true
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	return v.Struct(c)
}

func resolvePath(path string) (string, error) {
	explicit := path
	if explicit == "" {
		explicit = os.Getenv(PathEnvVar)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath, nil
	}
	return "", nil
}

// envTransformFunc maps DINEREC_CATALOG__SOURCE to catalog.source. The
// config path variable itself is skipped.
func envTransformFunc(key string) string {
	if key == PathEnvVar {
		return ""
	}
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), envNestingDelimiter, ".")
}
