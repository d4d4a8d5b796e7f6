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
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusNotFound, map[string]string{"message": "No matching restaurant found"})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "No matching restaurant found" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()
	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("unexpected user agent %q", r.UserAgent)
	}
	if r.Client == nil || r.Client.Timeout == 0 {
		t.Error("expected client with timeout")
	}
}

func TestNewHttpReader_Options(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	r := NewHttpReader(WithUserAgent("test-agent"), WithClient(custom))
	if r.UserAgent != "test-agent" {
		t.Errorf("unexpected user agent %q", r.UserAgent)
	}
	if r.Client != custom {
		t.Error("expected custom client to be kept")
	}

	r = NewHttpReader(WithTotalTimeout(2*time.Second), WithInsecureSkipVerify(true))
	if r.Client.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", r.Client.Timeout)
	}
	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok || !tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("expected insecure transport")
	}
}

func TestHttpReader_ReadWithContext(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("payload"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	r := NewHttpReader()
	data, err := r.ReadWithContext(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected body %q", data)
	}
	if gotAgent != HttpReaderUserAgent {
		t.Errorf("expected user agent %q, got %q", HttpReaderUserAgent, gotAgent)
	}

	if _, err := r.ReadWithContext(context.Background(), srv.URL+"/fail"); err == nil {
		t.Error("expected error for 500")
	}
	if _, err := r.ReadWithContext(context.Background(), ""); err == nil {
		t.Error("expected error for empty url")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.ReadWithContext(ctx, srv.URL+"/ok"); err == nil {
		t.Error("expected error for canceled context")
	}
}
