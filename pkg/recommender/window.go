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

package recommender

import (
	stderrors "errors"

	"github.com/mchmarny/dinerec/pkg/catalog"
	"github.com/mchmarny/dinerec/pkg/errors"
)

// Window is a daily opening interval. Both bounds are inclusive.
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// CrossesMidnight reports whether the window wraps past midnight. A window
// whose bounds are equal counts as wrapping and is therefore always open.
func (w Window) CrossesMidnight() bool {
	return w.Open >= w.Close
}

// Contains reports whether now falls inside the window.
func (w Window) Contains(now TimeOfDay) bool {
	if w.CrossesMidnight() {
		return now >= w.Open || now <= w.Close
	}
	return w.Open <= now && now <= w.Close
}

// String renders the window as HH:MM-HH:MM.
func (w Window) String() string {
	return w.Open.String() + "-" + w.Close.String()
}

// WindowOf parses the opening hours of r.
func WindowOf(r catalog.Restaurant) (Window, error) {
	open, err := ParseTimeOfDay(r.OpenTime)
	if err != nil {
		return Window{}, annotate(err, r.Name, "openTime")
	}
	closing, err := ParseTimeOfDay(r.CloseTime)
	if err != nil {
		return Window{}, annotate(err, r.Name, "closeTime")
	}
	return Window{Open: open, Close: closing}, nil
}

// IsOpen reports whether r is open at now.
func IsOpen(r catalog.Restaurant, now TimeOfDay) (bool, error) {
	w, err := WindowOf(r)
	if err != nil {
		return false, err
	}
	return w.Contains(now), nil
}

func annotate(err error, name, field string) error {
	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		se.Context["restaurant"] = name
		se.Context["field"] = field
	}
	return err
}
