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

// Package client provides Kubernetes client construction for ConfigMap
// catalog sources.
//
// A catalog path of the form cm://namespace/name is read through this
// package. The shared client is built once with sync.Once:
//
//	k8s, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// An explicit kubeconfig (catalog.kubeconfig in the server config) bypasses
// the shared instance:
//
//	k8s, err := client.ForKubeconfig("/etc/dinerec/kubeconfig")
//
// Resolution order for an empty path is $KUBECONFIG, ~/.kube/config, then
// the in-cluster service account. Tests use k8s.io/client-go/kubernetes/fake.
package client
