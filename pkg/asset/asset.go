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

package asset

import (
	_ "embed"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mchmarny/dinerec/pkg/defaults"
	"github.com/mchmarny/dinerec/pkg/errors"
	"github.com/mchmarny/dinerec/pkg/server"
)

// FaviconContentType is the media type of the embedded icon.
const FaviconContentType = "image/vnd.microsoft.icon"

//go:embed static/favicon.ico
var favicon []byte

// Favicon returns a copy of the embedded icon.
func Favicon() []byte {
	out := make([]byte, len(favicon))
	copy(out, favicon)
	return out
}

// FaviconHandler serves the embedded icon with a public one-day cache
// directive. HEAD is answered without a body.
func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	w.Header().Set("Content-Type", FaviconContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(favicon)))
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.AssetCacheMaxAge.Seconds())))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(favicon)
}
