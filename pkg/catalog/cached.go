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
	"slices"
	"sync"
)

// CachedLoader reuses the first successful load of the wrapped Loader for
// the lifetime of the process. Failed loads are retried on the next call.
type CachedLoader struct {
	next Loader

	mu     sync.Mutex
	cached []Restaurant
	loaded bool
}

// NewCachedLoader wraps next.
func NewCachedLoader(next Loader) *CachedLoader {
	return &CachedLoader{next: next}
}

// Load returns a copy of the cached catalog, loading it on first use.
func (l *CachedLoader) Load(ctx context.Context) ([]Restaurant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.loaded {
		restaurants, err := l.next.Load(ctx)
		if err != nil {
			return nil, err
		}
		l.cached = restaurants
		l.loaded = true
	}
	return slices.Clone(l.cached), nil
}
