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

// Package errors provides structured error types for the dinerec service.
//
// StructuredError carries a machine-readable ErrorCode, a human message, the
// wrapped cause and optional context. The HTTP layer maps codes to status
// codes (see pkg/server.HTTPStatusFromCode), so packages return structured
// errors instead of choosing status codes themselves.
//
// # Usage
//
//	if err := reader.Deserialize(&doc); err != nil {
//	    return errors.WrapWithContext(errors.ErrCodeCatalogUnavailable,
//	        "failed to decode catalog", err, map[string]any{"source": path})
//	}
//
// Code-only sentinels match any error with the same code:
//
//	var ErrCatalogUnavailable = errors.New(errors.ErrCodeCatalogUnavailable, "")
//
//	if stderrors.Is(err, ErrCatalogUnavailable) {
//	    // ...
//	}
package errors
