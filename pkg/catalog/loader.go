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
	"fmt"
)

// Catalog sources.
const (
	SourceStatic = "static"
	SourceFile   = "file"
)

// SupportedSources lists the accepted source names.
func SupportedSources() []string {
	return []string{SourceStatic, SourceFile}
}

// NewLoader returns the loader for source. path may be a file, an HTTP(S)
// URL or a cm://namespace/name URI and is required for SourceFile. With
// cache set the first successful load is reused.
func NewLoader(source, path, kubeconfig string, cache bool) (Loader, error) {
	var l Loader
	switch source {
	case SourceStatic, "":
		l = NewStaticLoader(nil)
	case SourceFile:
		if path == "" {
			return nil, fmt.Errorf("catalog source %q requires a path", source)
		}
		l = NewFileLoader(path, kubeconfig)
	default:
		return nil, fmt.Errorf("unsupported catalog source %q (supported: %v)", source, SupportedSources())
	}

	if cache {
		return NewCachedLoader(l), nil
	}
	return l, nil
}
