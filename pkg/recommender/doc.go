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

// Package recommender decides which restaurants are open and match a
// query.
//
// Opening hours are daily windows with inclusive bounds. A window whose
// opening time is not before its closing time wraps past midnight:
//
//	09:00-23:00  open from 09:00 through 23:00
//	22:00-02:00  open from 22:00 through 02:00 the next morning
//	10:00-10:00  always open
//
// Evaluation is pure: Recommend reads only its arguments, so the caller
// supplies the wall-clock time and owns logging, metrics and history.
package recommender
