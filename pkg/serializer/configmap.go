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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mchmarny/dinerec/pkg/defaults"
	"github.com/mchmarny/dinerec/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ConfigMapURIScheme prefixes ConfigMap sources: cm://namespace/name.
const ConfigMapURIScheme = "cm://"

// IsConfigMapURI reports whether uri addresses a ConfigMap.
func IsConfigMapURI(uri string) bool {
	return strings.HasPrefix(strings.TrimSpace(uri), ConfigMapURIScheme)
}

// ParseConfigMapURI splits cm://namespace/name into its parts.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}

// FromConfigMap decodes a value of type T stored in a ConfigMap under
// "<key>.yaml" or "<key>.json". An explicit "format" data entry selects
// which key is tried first.
func FromConfigMap[T any](ctx context.Context, k8s client.Interface, namespace, name, key string) (*T, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := k8s.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	candidates := []Format{FormatYAML, FormatJSON}
	if f, ok := cm.Data["format"]; ok {
		preferred := Format(strings.ToLower(strings.TrimSpace(f)))
		if preferred.IsUnknown() || preferred == FormatTable {
			return nil, fmt.Errorf("ConfigMap %s/%s has unsupported format %q", namespace, name, f)
		}
		candidates = []Format{preferred}
	}

	var content string
	var format Format
	for _, f := range candidates {
		if data, ok := cm.Data[fmt.Sprintf("%s.%s", key, f)]; ok {
			content, format = data, f
			break
		}
	}
	if format == "" {
		return nil, fmt.Errorf("ConfigMap %s/%s has no %s data", namespace, name, key)
	}

	slog.Debug("reading from ConfigMap",
		"namespace", namespace,
		"name", name,
		"format", format,
		"size", len(content))

	reader, err := NewReader(format, strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for ConfigMap data: %w", err)
	}

	var v T
	if err := reader.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize ConfigMap data: %w", err)
	}
	return &v, nil
}
