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

package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mchmarny/dinerec/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrCodeCatalogUnavailable, http.StatusInternalServerError},
		{errors.ErrCodeInvalidTimeFormat, http.StatusInternalServerError},
		{errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	retryable := map[errors.ErrorCode]bool{
		errors.ErrCodeInvalidRequest:     false,
		errors.ErrCodeNotFound:           false,
		errors.ErrCodeCatalogUnavailable: false,
		errors.ErrCodeInvalidTimeFormat:  false,
		errors.ErrCodeTimeout:            true,
		errors.ErrCodeUnavailable:        true,
		errors.ErrCodeRateLimitExceeded:  true,
		errors.ErrCodeInternal:           true,
	}
	for code, want := range retryable {
		if got := retryableFromCode(code); got != want {
			t.Errorf("retryableFromCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestMergeDetails(t *testing.T) {
	if got := mergeDetails(nil, map[string]any{}); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}

	got := mergeDetails(map[string]any{"a": 1, "shared": "old"}, map[string]any{"b": 2, "shared": "new"})
	if got["a"] != 1 || got["b"] != 2 || got["shared"] != "new" {
		t.Fatalf("unexpected merge result %#v", got)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusNotFound, errors.ErrCodeNotFound, "No matching restaurant found", false, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Code != "NOT_FOUND" || resp.Message != "No matching restaurant found" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.RequestID != "req-123" || resp.Retryable || resp.Details != nil {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestWriteErrorFromErr_Structured(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	w := httptest.NewRecorder()

	err := errors.WrapWithContext(errors.ErrCodeCatalogUnavailable, "failed to read catalog",
		stderrors.New("no such file"), map[string]any{"source": "catalog.yaml"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Code != "CATALOG_UNAVAILABLE" || resp.Message != "failed to read catalog" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Retryable {
		t.Error("catalog errors are not retryable")
	}
	if resp.Details["source"] != "catalog.yaml" || resp.Details["extra"] != "yes" || resp.Details["error"] != "no such file" {
		t.Fatalf("unexpected details %#v", resp.Details)
	}
	if resp.RequestID == "" {
		t.Error("expected generated request ID")
	}
}

func TestWriteErrorFromErr_PlainError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, stderrors.New("boom"), "fallback", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Code != "INTERNAL" || resp.Message != "fallback" || resp.Details["error"] != "boom" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
