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
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		uri       string
		namespace string
		name      string
		wantErr   bool
	}{
		{uri: "cm://default/catalog", namespace: "default", name: "catalog"},
		{uri: "cm://dinerec/catalog-v2", namespace: "dinerec", name: "catalog-v2"},
		{uri: "cm:// ns / name ", namespace: "ns", name: "name"},
		{uri: "cm://default", wantErr: true},
		{uri: "cm:///catalog", wantErr: true},
		{uri: "cm://default/", wantErr: true},
		{uri: "file://default/catalog", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			ns, name, err := ParseConfigMapURI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConfigMapURI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if ns != tt.namespace || name != tt.name {
				t.Errorf("got %s/%s, want %s/%s", ns, name, tt.namespace, tt.name)
			}
		})
	}

	if !IsConfigMapURI(" cm://a/b") || IsConfigMapURI("catalog.yaml") {
		t.Error("IsConfigMapURI misclassified input")
	}
}

func TestFromConfigMap(t *testing.T) {
	k8s := fake.NewSimpleClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "yaml-catalog", Namespace: "dinerec"},
			Data: map[string]string{
				"catalog.yaml": "kind: Catalog\nentries:\n  - name: Pizza Hut\n",
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "json-catalog", Namespace: "dinerec"},
			Data: map[string]string{
				"format":       "json",
				"catalog.yaml": "ignored: true\n",
				"catalog.json": `{"kind":"Catalog","entries":[{"name":"Sushi World"}]}`,
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "empty", Namespace: "dinerec"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "bad-format", Namespace: "dinerec"},
			Data:       map[string]string{"format": "table"},
		},
	)
	ctx := context.Background()

	doc, err := FromConfigMap[testDoc](ctx, k8s, "dinerec", "yaml-catalog", "catalog")
	if err != nil {
		t.Fatalf("yaml ConfigMap: %v", err)
	}
	if doc.Entries[0].Name != "Pizza Hut" {
		t.Errorf("unexpected entry %+v", doc.Entries[0])
	}

	doc, err = FromConfigMap[testDoc](ctx, k8s, "dinerec", "json-catalog", "catalog")
	if err != nil {
		t.Fatalf("json ConfigMap: %v", err)
	}
	if doc.Entries[0].Name != "Sushi World" {
		t.Errorf("format key not honoured: %+v", doc.Entries)
	}

	for _, name := range []string{"empty", "bad-format", "missing"} {
		if _, err := FromConfigMap[testDoc](ctx, k8s, "dinerec", name, "catalog"); err == nil {
			t.Errorf("expected error for ConfigMap %q", name)
		}
	}
}
