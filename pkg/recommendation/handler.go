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

package recommendation

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mchmarny/dinerec/pkg/defaults"
	"github.com/mchmarny/dinerec/pkg/errors"
	"github.com/mchmarny/dinerec/pkg/serializer"
	"github.com/mchmarny/dinerec/pkg/server"
)

// NoMatchMessage is returned when no open restaurant matches a query.
const NoMatchMessage = "No matching restaurant found"

// Handler serves GET recommendation queries.
type Handler struct {
	Service *Service
	Schema  Schema
}

// NewHandler returns a Handler rendering responses in schema.
func NewHandler(svc *Service, schema Schema) *Handler {
	return &Handler{Service: svc, Schema: schema}
}

// ServeHTTP answers 200 with matches, 404 when nothing matches and 500 when
// the catalog cannot be loaded or evaluated.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	q := ParseQuery(r)
	res, err := h.Service.Query(ctx, q)
	if err != nil {
		slog.Error("recommendation failed",
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err,
		)
		server.WriteErrorFromErr(w, r, err, "Failed to build recommendation", nil)
		return
	}

	slog.Debug("recommendations",
		"requestID", server.RequestIDFromContext(r.Context()),
		"cuisine", q.Cuisine,
		"vegetarian", q.Vegetarian,
		"count", len(res.Restaurants),
	)

	if res.Empty() {
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound, NoMatchMessage, false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, Render(res.Restaurants, h.Schema))
}
