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

package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func resetSingleton() {
	clientOnce = sync.Once{}
	cachedClient = nil
	cachedConfig = nil
	clientErr = nil
}

func TestBuildKubeClient_InvalidPaths(t *testing.T) {
	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
	}{
		{name: "explicit invalid path", kubeconfigArg: "/nonexistent/path/to/kubeconfig"},
		{name: "env var with invalid path", kubeconfigEnv: "/nonexistent/env/kubeconfig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUBECONFIG", tt.kubeconfigEnv)

			_, _, err := BuildKubeClient(tt.kubeconfigArg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "failed to build kube config") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildKubeClient_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := os.WriteFile(path, []byte("invalid yaml content"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := BuildKubeClient(path); err == nil {
		t.Error("expected error for malformed kubeconfig")
	}
	if _, err := ForKubeconfig(path); err == nil {
		t.Error("ForKubeconfig should surface the build error")
	}
}

func TestGetKubeClient_Singleton(t *testing.T) {
	resetSingleton()
	defer resetSingleton()

	client1, config1, err1 := GetKubeClient()
	client2, config2, err2 := GetKubeClient()

	// nolint:errorlint // singleton returns the same error value
	if err1 != err2 {
		t.Errorf("expected same error, got %v and %v", err1, err2)
	}
	if client1 != client2 {
		t.Error("expected same client instance")
	}
	if config1 != config2 {
		t.Error("expected same config instance")
	}
	if err1 != nil && client1 != nil {
		t.Error("client must be nil when construction failed")
	}
}
