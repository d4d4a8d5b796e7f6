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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"catalog.json", FormatJSON},
		{"catalog.JSON", FormatJSON},
		{"catalog.yaml", FormatYAML},
		{"/etc/dinerec/catalog.yml", FormatYAML},
		{"out.txt", FormatTable},
		{"out.table", FormatTable},
		{"catalog", FormatJSON},
		{"https://example.com/catalog.yaml?ref=main", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
	r, err := NewReader(FormatJSON, strings.NewReader(`{"kind":"Catalog"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc testDoc
	if err := r.Deserialize(&doc); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if doc.Kind != "Catalog" {
		t.Errorf("expected Catalog, got %q", doc.Kind)
	}
}

func TestReader_DeserializeErrors(t *testing.T) {
	var nilReader *Reader
	if err := nilReader.Deserialize(&testDoc{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := nilReader.Close(); err != nil {
		t.Errorf("Close on nil reader: %v", err)
	}

	r, _ := NewReader(FormatYAML, strings.NewReader("entries: [unclosed"))
	if err := r.Deserialize(&testDoc{}); err == nil {
		t.Error("expected YAML decode error")
	}

	r, _ = NewReader(FormatJSON, nil)
	if err := r.Deserialize(&testDoc{}); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "catalog.yaml")
	content := "kind: Catalog\nentries:\n  - name: Sushi World\n    openTime: \"11:00\"\n"
	if err := os.WriteFile(yamlPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	doc, err := FromFile[testDoc](context.Background(), yamlPath)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if len(doc.Entries) != 1 || doc.Entries[0].Name != "Sushi World" {
		t.Errorf("unexpected entries: %+v", doc.Entries)
	}

	if _, err := FromFile[testDoc](context.Background(), filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile[testDoc](context.Background(), badPath); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestFromFile_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"kind":"Catalog","entries":[{"name":"Day time","openTime":"08:00"}]}`))
	}))
	defer srv.Close()

	doc, err := FromFile[testDoc](context.Background(), srv.URL+"/catalog.json")
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if doc.Entries[0].Name != "Day time" {
		t.Errorf("unexpected entry: %+v", doc.Entries[0])
	}

	if _, err := FromFile[testDoc](context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Error("expected error for 404")
	}
}
