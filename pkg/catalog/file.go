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

package catalog

import (
	"context"
	"log/slog"

	"github.com/mchmarny/dinerec/pkg/defaults"
	"github.com/mchmarny/dinerec/pkg/errors"
	"github.com/mchmarny/dinerec/pkg/k8s/client"
	"github.com/mchmarny/dinerec/pkg/serializer"
)

// configMapDataKey is the ConfigMap data key prefix: catalog.yaml or catalog.json.
const configMapDataKey = "catalog"

// FileLoader reads a catalog document on every Load from a local path, an
// HTTP(S) URL, or a ConfigMap addressed as cm://namespace/name.
type FileLoader struct {
	Path string

	// Kubeconfig is used for cm:// paths when Client is nil.
	Kubeconfig string

	// Client overrides Kubernetes client construction.
	Client client.Interface
}

// NewFileLoader returns a loader for path.
func NewFileLoader(path, kubeconfig string) *FileLoader {
	return &FileLoader{Path: path, Kubeconfig: kubeconfig}
}

// Load reads, decodes and validates the catalog. Every failure is reported
// as CATALOG_UNAVAILABLE with the source path in context.
func (l *FileLoader) Load(ctx context.Context) ([]Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	doc, err := l.read(ctx)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeCatalogUnavailable,
			"failed to read catalog", err, map[string]any{"source": l.Path})
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	slog.Debug("catalog loaded", "source", l.Path, "restaurants", len(doc.Restaurants))
	return doc.Restaurants, nil
}

func (l *FileLoader) read(ctx context.Context) (*Document, error) {
	if !serializer.IsConfigMapURI(l.Path) {
		return serializer.FromFile[Document](ctx, l.Path)
	}

	namespace, name, err := serializer.ParseConfigMapURI(l.Path)
	if err != nil {
		return nil, err
	}

	k8s := l.Client
	if k8s == nil {
		if k8s, err = client.ForKubeconfig(l.Kubeconfig); err != nil {
			return nil, err
		}
	}
	return serializer.FromConfigMap[Document](ctx, k8s, namespace, name, configMapDataKey)
}
