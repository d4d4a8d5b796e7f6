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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for dinerec_recommend_total.
const (
	outcomeMatch   = "match"
	outcomeNoMatch = "no_match"
	outcomeError   = "error"
)

var (
	recommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dinerec_recommend_duration_seconds",
			Help:    "Time to load the catalog, evaluate and record a query",
			Buckets: prometheus.DefBuckets,
		},
	)

	recommendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinerec_recommend_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"},
	)

	historyAppendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dinerec_history_append_failures_total",
			Help: "Total number of query history entries that could not be recorded",
		},
	)
)
