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
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/mchmarny/dinerec/pkg/catalog"
	"github.com/mchmarny/dinerec/pkg/errors"
	"github.com/mchmarny/dinerec/pkg/history"
	"github.com/mchmarny/dinerec/pkg/recommender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loaderFunc func(ctx context.Context) ([]catalog.Restaurant, error)

func (f loaderFunc) Load(ctx context.Context) ([]catalog.Restaurant, error) { return f(ctx) }

type recordingSink struct {
	mu      sync.Mutex
	entries []history.Entry
	err     error
}

func (s *recordingSink) Append(_ context.Context, e history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *recordingSink) Close() error { return nil }

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 1, hour, minute, 0, 0, time.UTC)
	}
}

func newTestService(sink history.Sink, hour, minute int) *Service {
	svc := NewService(catalog.NewStaticLoader(nil), sink)
	svc.Clock = fixedClock(hour, minute)
	return svc
}

func TestServiceQuery(t *testing.T) {
	tests := []struct {
		name      string
		hour      int
		minute    int
		query     Query
		wantCount int
	}{
		{"late night american", 3, 30, Query{Cuisine: "american"}, 2},
		{"noon everything", 12, 0, Query{}, 8},
		{"early morning nothing", 7, 0, Query{}, 0},
		{"vegetarian late night", 23, 30, Query{Vegetarian: "true"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			svc := newTestService(sink, tt.hour, tt.minute)

			res, err := svc.Query(context.Background(), tt.query)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Len(t, res.Restaurants, tt.wantCount)

			require.Equal(t, 1, sink.count(), "exactly one history entry per query")
			e := sink.entries[0]
			assert.Equal(t, tt.query.Cuisine, e.Cuisine)
			assert.Equal(t, tt.query.Vegetarian, e.Vegetarian)
			assert.Equal(t, res.Restaurants, e.Restaurants)
			assert.Equal(t, 2024, e.Timestamp.Year())
		})
	}
}

func TestServiceQueryLoadFailure(t *testing.T) {
	sink := &recordingSink{}
	svc := NewService(loaderFunc(func(context.Context) ([]catalog.Restaurant, error) {
		return nil, errors.New(errors.ErrCodeCatalogUnavailable, "catalog missing")
	}), sink)

	res, err := svc.Query(context.Background(), Query{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, stderrors.Is(err, catalog.ErrCatalogUnavailable))
	assert.Zero(t, sink.count(), "failed queries are not recorded")
}

func TestServiceQueryInvalidTime(t *testing.T) {
	sink := &recordingSink{}
	svc := NewService(loaderFunc(func(context.Context) ([]catalog.Restaurant, error) {
		return []catalog.Restaurant{
			{Name: "Broken", Cuisine: "Thai", OpenTime: "25:00", CloseTime: "10:00"},
		}, nil
	}), sink)
	svc.Clock = fixedClock(9, 0)

	_, err := svc.Query(context.Background(), Query{})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, recommender.ErrInvalidTimeFormat))
	assert.Zero(t, sink.count())
}

func TestServiceQueryHistoryFailureIsIgnored(t *testing.T) {
	sink := &recordingSink{err: stderrors.New("disk full")}
	svc := newTestService(sink, 12, 0)

	res, err := svc.Query(context.Background(), Query{Cuisine: "italian"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Restaurants)
}

func TestServiceQueryRecordsAfterCancel(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink, 12, 0)

	ctx, cancel := context.WithCancel(context.Background())
	res, err := svc.Query(ctx, Query{})
	cancel()
	require.NoError(t, err)
	assert.Len(t, res.Restaurants, 8)
	assert.Equal(t, 1, sink.count())
}

func TestNewServiceNilSink(t *testing.T) {
	svc := NewService(catalog.NewStaticLoader(nil), nil)
	svc.Clock = fixedClock(12, 0)

	_, err := svc.Query(context.Background(), Query{})
	assert.NoError(t, err)
}
