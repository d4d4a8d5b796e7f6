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
	"fmt"
	"time"

	"github.com/mchmarny/dinerec/pkg/errors"
)

// ErrInvalidTimeFormat matches errors raised for opening hours that are not
// HH:MM.
var ErrInvalidTimeFormat = errors.New(errors.ErrCodeInvalidTimeFormat, "")

const clockLayout = "15:04"

// TimeOfDay is a wall-clock time in seconds since midnight, 0..86399.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour HH:MM value. The hour may have one or two
// digits; minutes must have two.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeInvalidTimeFormat,
			fmt.Sprintf("invalid time of day %q", s), err,
			map[string]any{"value": s})
	}
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60), nil
}

// ClockTime extracts the wall-clock time of t in its own location,
// ignoring the date.
func ClockTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// String renders HH:MM, or HH:MM:SS when seconds are non-zero.
func (d TimeOfDay) String() string {
	h, m, s := int(d)/3600, int(d)%3600/60, int(d)%60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
