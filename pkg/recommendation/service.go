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
	"time"

	"github.com/mchmarny/dinerec/pkg/catalog"
	"github.com/mchmarny/dinerec/pkg/defaults"
	"github.com/mchmarny/dinerec/pkg/history"
	"github.com/mchmarny/dinerec/pkg/recommender"
)

// Service runs a query end to end: load the catalog, evaluate it at the
// current wall-clock time and record the outcome.
type Service struct {
	Loader catalog.Loader
	Sink   history.Sink
	Clock  func() time.Time
}

// NewService returns a Service using the system clock. A nil sink records
// nothing.
func NewService(loader catalog.Loader, sink history.Sink) *Service {
	if sink == nil {
		sink = history.NopSink{}
	}
	return &Service{Loader: loader, Sink: sink, Clock: time.Now}
}

// Query returns the open restaurants matching q. Exactly one history entry
// is appended per successful evaluation, including empty results. Load and
// evaluation failures are returned without recording.
func (s *Service) Query(ctx context.Context, q Query) (*recommender.Result, error) {
	start := time.Now()
	defer func() {
		recommendDuration.Observe(time.Since(start).Seconds())
	}()

	restaurants, err := s.Loader.Load(ctx)
	if err != nil {
		recommendTotal.WithLabelValues(outcomeError).Inc()
		return nil, err
	}

	now := s.now()
	res, err := recommender.Recommend(restaurants, recommender.Criteria{
		Cuisine:    q.Cuisine,
		Vegetarian: q.Vegetarian,
		Now:        recommender.ClockTime(now),
	})
	if err != nil {
		recommendTotal.WithLabelValues(outcomeError).Inc()
		return nil, err
	}

	outcome := outcomeMatch
	if res.Empty() {
		outcome = outcomeNoMatch
	}
	recommendTotal.WithLabelValues(outcome).Inc()

	s.record(ctx, history.Entry{
		Timestamp:   now,
		Cuisine:     q.Cuisine,
		Vegetarian:  q.Vegetarian,
		Restaurants: res.Restaurants,
	})

	return res, nil
}

// record appends e best-effort. The append survives request cancellation
// but is bounded by its own timeout.
func (s *Service) record(ctx context.Context, e history.Entry) {
	if s.Sink == nil {
		return
	}
	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaults.HistoryAppendTimeout)
	defer cancel()

	if err := s.Sink.Append(appendCtx, e); err != nil {
		historyAppendFailures.Inc()
		slog.Warn("failed to record query history",
			"error", err,
			"cuisine", e.Cuisine,
			"vegetarian", e.Vegetarian,
		)
	}
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}
