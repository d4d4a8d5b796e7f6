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

// Package serializer reads and writes dinerec documents as JSON, YAML or
// a flat table.
//
// # Writing
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "catalog.yaml")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// An empty path writes to stdout. The table format flattens nested values
// into dotted keys named after their JSON tags:
//
//	FIELD                                  VALUE
//	-----                                  -----
//	restaurantRecommendations[0].cuisine   Italian
//	restaurantRecommendations[0].name      Pizza Hut
//
// Table output cannot be read back.
//
// # Reading
//
// FromFile picks the format from the extension (.json, .yaml, .yml) and
// accepts local paths and HTTP(S) URLs:
//
//	doc, err := serializer.FromFile[catalog.Document](ctx, "https://example.com/catalog.yaml")
//
// FromConfigMap reads the same documents from a Kubernetes ConfigMap
// addressed as cm://namespace/name:
//
//	doc, err := serializer.FromConfigMap[catalog.Document](ctx, clientset, "dinerec", "catalog", "catalog")
//
// # HTTP
//
// RespondJSON buffers the encoded value before writing headers, so an
// encoding failure still produces a clean 500.
package serializer
